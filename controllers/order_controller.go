package controllers

import (
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/services/reporting"
	"github.com/Jahid-Hassan-Noor/food-now/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func orderResponse(order models.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          order.ID,
		User:        order.User,
		UserAddress: order.UserAddress,
		UserPhone:   order.UserPhone,
		CampaignID:  order.CampaignID,
		Quantity:    order.Quantity,
		FoodItems:   order.FoodItems,
		FoodPrice:   order.FoodPrice,
		OrderTime:   order.OrderTime,
	}
}

// orderTotal prices an order: the sum of the referenced foods times the
// quantity. Unknown food ids contribute nothing.
func orderTotal(foodItems string, quantity int) (float64, error) {
	foodIDs := reporting.ParseFoodIDs(foodItems)
	if len(foodIDs) == 0 {
		return 0, nil
	}

	var foods []models.Food
	if err := config.DB.Where("id IN ?", foodIDs).Find(&foods).Error; err != nil {
		return 0, err
	}

	prices := make(map[string]float64, len(foods))
	for _, food := range foods {
		prices[itoa(food.ID)] = food.FoodPrice
	}

	total := 0.0
	for _, foodID := range foodIDs {
		total += prices[foodID]
	}
	return total * float64(quantity), nil
}

// CreateOrder places an order against a running campaign, decrementing
// its available quantity.
func CreateOrder(c *gin.Context) {
	var input dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var campaign models.Campaign
	if err := config.DB.First(&campaign, input.CampaignID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if campaign.Status != constants.CampaignStatusRunning {
		response.BadRequest(c, "Campaign is not running")
		return
	}
	if campaign.QuantityAvailable < quantity {
		response.BadRequest(c, "Campaign does not have enough quantity left")
		return
	}

	total, err := orderTotal(input.FoodItems, quantity)
	if err != nil {
		response.ServerError(c)
		return
	}

	order := models.Order{
		User:        user.Username,
		UserAddress: input.UserAddress,
		UserPhone:   input.UserPhone,
		CampaignID:  campaign.ID,
		Quantity:    quantity,
		FoodItems:   input.FoodItems,
		FoodPrice:   total,
	}
	if err := validator.ValidateOrder(&order); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Campaign{}).
			Where("id = ? AND quantity_available >= ?", campaign.ID, quantity).
			UpdateColumn("quantity_available", gorm.Expr("quantity_available - ?", quantity)).
			UpdateColumn("total_orders", gorm.Expr("total_orders + 1")).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&models.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"total_orders":  gorm.Expr("total_orders + 1"),
				"last_order_at": now,
			}).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, orderResponse(order))
}

// ListMyOrders returns the caller's pending orders.
func ListMyOrders(c *gin.Context) {
	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var query dto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.Order{}).Where(`"user" = ?`, user.Username)
	if query.CampaignID != nil {
		tx = tx.Where("campaign_id = ?", *query.CampaignID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var orders []models.Order
	if err := tx.Order("order_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		results = append(results, orderResponse(order))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

func GetOrder(c *gin.Context) {
	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var order models.Order
	tx := config.DB.Where("id = ?", c.Param("id"))
	if user.Role != constants.RoleAdmin {
		tx = tx.Where(`"user" = ?`, user.Username)
	}
	if err := tx.First(&order).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, orderResponse(order))
}

// GetOrderHistory lists completed orders. Users see their own, chefs
// see the orders they fulfilled, admins see everything.
func GetOrderHistory(c *gin.Context) {
	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.OrderHistory{})
	switch user.Role {
	case constants.RoleChef:
		tx = tx.Where("LOWER(chef) = LOWER(?)", user.Username)
	case constants.RoleAdmin:
	default:
		tx = tx.Where(`"user" = ?`, user.Username)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var history []models.OrderHistory
	if err := tx.Order("completed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&history).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.OrderHistoryResponse, 0, len(history))
	for _, row := range history {
		results = append(results, dto.OrderHistoryResponse{
			ID:          row.ID,
			OrderID:     row.OrderID,
			User:        row.User,
			CampaignID:  row.CampaignID,
			Quantity:    row.Quantity,
			FoodItems:   row.FoodItems,
			FoodPrice:   row.FoodPrice,
			Chef:        row.Chef,
			OrderTime:   row.OrderTime,
			CompletedAt: row.CompletedAt,
		})
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}
