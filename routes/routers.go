package routes

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/controllers"
	_ "github.com/Jahid-Hassan-Noor/food-now/docs"
	middlewares "github.com/Jahid-Hassan-Noor/food-now/middleware"
	"github.com/Jahid-Hassan-Noor/food-now/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.Use(middlewares.SessionMiddleware())

	notificationController := controllers.NewNotificationController(controllers.NotificationControllerOptions{
		DB:     db,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	}, m)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/verifyCode", controllers.VerifyCode)
	v1.POST("/resendCode", controllers.ResendVerificationCode)
	v1.POST("/forgetPassword", controllers.ForgetPassword)
	v1.POST("/newPassword", controllers.ResetPassword)
	v1.PUT("/changePassword", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.ChangePassword)

	v1.GET("/profile", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.GetProfile)
	v1.PUT("/profile", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.UpdateProfile)
	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ListUsers)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.SetUserStatus)

	v1.GET("/chefs", controllers.ListChefs)
	v1.GET("/chefs/:username", controllers.GetChef)
	v1.PUT("/chefProfile", middlewares.AuthMiddleware(constants.RoleChef), controllers.UpdateChefProfile)

	v1.GET("/foods", controllers.ListFoods)
	v1.GET("/foods/:id", controllers.GetFood)
	v1.POST("/foods", middlewares.AuthMiddleware(constants.RoleChef), controllers.CreateFood)
	v1.PUT("/foods/:id", middlewares.AuthMiddleware(constants.RoleChef), controllers.UpdateFood)
	v1.DELETE("/foods/:id", middlewares.AuthMiddleware(constants.RoleChef), controllers.DeleteFood)
	v1.GET("/foodPrices/:username", controllers.GetFoodPriceSummary)
	v1.POST("/foodImage", middlewares.AuthMiddleware(constants.RoleChef), controllers.UploadFoodImage)

	v1.GET("/campaigns", controllers.ListCurrentCampaigns)
	v1.GET("/campaigns/:id", controllers.GetCampaign)
	v1.POST("/campaigns", middlewares.AuthMiddleware(constants.RoleChef), controllers.CreateCampaign)
	v1.PUT("/campaigns/:id/end", middlewares.AuthMiddleware(constants.RoleChef), controllers.EndCampaign)
	v1.PUT("/campaigns/:id/cancel", middlewares.AuthMiddleware(constants.RoleChef), controllers.CancelCampaign)
	v1.PUT("/campaigns/:id/resume", middlewares.AuthMiddleware(constants.RoleChef), controllers.ResumeCampaign)
	v1.GET("/campaignHistory", middlewares.AuthMiddleware(constants.RoleChef, constants.RoleAdmin), controllers.GetCampaignHistory)

	v1.POST("/order", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.CreateOrder)
	v1.GET("/order", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.ListMyOrders)
	v1.GET("/order/:id", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.GetOrder)
	v1.GET("/orderHistory", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.GetOrderHistory)

	v1.GET("/campaignOrders", middlewares.AuthMiddleware(constants.RoleChef), controllers.ListPendingCampaignOrders)
	v1.POST("/campaignOrders/complete", middlewares.AuthMiddleware(constants.RoleChef), controllers.CompleteCampaignOrder)

	v1.POST("/topup", middlewares.AuthMiddleware(constants.RoleChef), controllers.CreateTopUp)
	v1.GET("/transactions", middlewares.AuthMiddleware(constants.RoleChef, constants.RoleAdmin), controllers.ListTransactions)
	v1.PUT("/transactions/review", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ReviewTransaction)
	v1.GET("/transactionHistory", middlewares.AuthMiddleware(constants.RoleChef, constants.RoleAdmin), controllers.GetTransactionHistory)

	v1.GET("/subscriptionOptions", controllers.ListSubscriptionOptions)
	v1.POST("/subscriptionOptions", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.CreateSubscriptionOption)
	v1.PUT("/subscriptionOptions/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateSubscriptionOption)
	v1.DELETE("/subscriptionOptions/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteSubscriptionOption)
	v1.GET("/subscription", middlewares.AuthMiddleware(constants.RoleChef), controllers.GetSubscriptionStatus)
	v1.POST("/subscription", middlewares.AuthMiddleware(constants.RoleChef), controllers.RequestSubscription)

	v1.POST("/feedback", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.CreateFeedback)
	v1.GET("/feedback", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.ListMyFeedback)
	v1.GET("/feedbackAll", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ListFeedback)
	v1.PUT("/feedback/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.UpdateFeedback)

	v1.GET("/notifications", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.ListMyNotifications)
	v1.PUT("/notifications/read", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.MarkNotificationsRead)
	v1.POST("/announcements", middlewares.AuthMiddleware(constants.RoleAdmin), notificationController.CreateAnnouncement)
	v1.GET("/announcements", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.ListAnnouncements)

	v1.GET("/admin/dashboard", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetAdminDashboard)
	v1.GET("/chef/dashboard", middlewares.AuthMiddleware(constants.RoleChef, constants.RoleAdmin), controllers.GetChefDashboard)
	v1.GET("/user/dashboard", middlewares.AuthMiddleware(constants.RoleUser, constants.RoleChef, constants.RoleAdmin), controllers.GetUserDashboard)
	v1.GET("/reportSchedules", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.GetReportSchedules)
	v1.POST("/reportSchedules", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.SaveReportSchedule)
	v1.POST("/reportSchedules/dispatch", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DispatchReportsNow)

	v1.POST("/img/upload", middlewares.AuthMiddleware(constants.RoleChef, constants.RoleAdmin), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload successful",
			"url":     resp.SecureURL,
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	setupWebSocket(m, notificationController)
}

// setupWebSocket tracks which user owns each session so realtime pushes
// can be targeted. Clients identify themselves with ?user_id=.
func setupWebSocket(m *melody.Melody, nc *controllers.NotificationController) {
	m.HandleConnect(func(s *melody.Session) {
		if id := sessionUserID(s); id > 0 {
			nc.RegisterObserver(s, id)
		}
	})
	m.HandleDisconnect(func(s *melody.Session) {
		if id := sessionUserID(s); id > 0 {
			nc.RemoveObserver(s, id)
		}
	})
}

func sessionUserID(s *melody.Session) uint {
	raw := s.Request.URL.Query().Get("user_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
