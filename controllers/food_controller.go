package controllers

import (
	"context"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

func foodResponse(food models.Food) dto.FoodResponse {
	return dto.FoodResponse{
		ID:              food.ID,
		FoodName:        food.FoodName,
		FoodDescription: food.FoodDescription,
		Chef:            food.Chef,
		FoodPrice:       food.FoodPrice,
		FoodImage:       food.FoodImage,
		IsListed:        food.IsListed,
		CreatedAt:       food.CreatedAt,
		UpdatedAt:       food.UpdatedAt,
	}
}

func CreateFood(c *gin.Context) {
	var input dto.CreateFoodRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	food := models.Food{
		FoodName:        input.FoodName,
		FoodDescription: input.FoodDescription,
		Chef:            user.Username,
		FoodPrice:       input.FoodPrice,
		FoodImage:       input.FoodImage,
		IsListed:        true,
	}
	if err := validator.ValidateFood(&food); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&food).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, foodResponse(food))
}

func UpdateFood(c *gin.Context) {
	var input dto.UpdateFoodRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	var food models.Food
	if err := config.DB.Where("id = ? AND chef = ?", c.Param("id"), user.Username).First(&food).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.FoodName != nil {
		food.FoodName = *input.FoodName
	}
	if input.FoodDescription != nil {
		food.FoodDescription = *input.FoodDescription
	}
	if input.FoodPrice != nil {
		food.FoodPrice = *input.FoodPrice
	}
	if input.FoodImage != nil {
		food.FoodImage = *input.FoodImage
	}
	if input.IsListed != nil {
		food.IsListed = *input.IsListed
	}
	if err := validator.ValidateFood(&food); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&food).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, foodResponse(food))
}

// DeleteFood delists a food item rather than removing the row, so past
// orders keep resolving its name.
func DeleteFood(c *gin.Context) {
	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	var food models.Food
	if err := config.DB.Where("id = ? AND chef = ?", c.Param("id"), user.Username).First(&food).Error; err != nil {
		response.NotFound(c)
		return
	}

	food.IsListed = false
	if err := config.DB.Save(&food).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func GetFood(c *gin.Context) {
	var food models.Food
	if err := config.DB.First(&food, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, foodResponse(food))
}

var foodSortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "food_price",
	"name":       "food_name",
}

func ListFoods(c *gin.Context) {
	var query dto.FoodListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.Food{}).Where("is_listed = ?", true)
	if query.Chef != "" {
		tx = tx.Where("LOWER(chef) = LOWER(?)", query.Chef)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("food_name LIKE ? OR food_description LIKE ?", pattern, pattern)
	}
	if query.MinPrice != nil {
		tx = tx.Where("food_price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		tx = tx.Where("food_price <= ?", *query.MaxPrice)
	}

	column, ok := foodSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if query.SortDir == "asc" {
		direction = "ASC"
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var foods []models.Food
	if err := tx.Order(column + " " + direction).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&foods).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.FoodResponse, 0, len(foods))
	for _, food := range foods {
		results = append(results, foodResponse(food))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// GetFoodPriceSummary aggregates the listed price spread for one chef.
func GetFoodPriceSummary(c *gin.Context) {
	chef := c.Param("username")

	var summary dto.FoodPriceSummary
	row := config.DB.Model(&models.Food{}).
		Select("COUNT(*) AS count, COALESCE(MIN(food_price), 0) AS min_price, COALESCE(MAX(food_price), 0) AS max_price, COALESCE(AVG(food_price), 0) AS avg_price").
		Where("LOWER(chef) = LOWER(?) AND is_listed = ?", chef, true).
		Scan(&summary)
	if row.Error != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, summary)
}

// UploadFoodImage pushes an image to Cloudinary and returns its URL.
func UploadFoodImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file in the request")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "foods"})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"url": resp.SecureURL})
}
