package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/jobs"
	"github.com/Jahid-Hassan-Noor/food-now/routes"
	"github.com/Jahid-Hassan-Noor/food-now/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Food Now API
// @version 1.0
// @description Campus food ordering marketplace backend.
// @BasePath /api/v1
func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	services.InitMailer()

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
