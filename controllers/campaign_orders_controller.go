package controllers

import (
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var monthlySalesColumns = [12]string{
	"sales_january", "sales_february", "sales_march", "sales_april",
	"sales_may", "sales_june", "sales_july", "sales_august",
	"sales_september", "sales_october", "sales_november", "sales_december",
}

// ListPendingCampaignOrders returns the pending orders across all of
// the authenticated chef's campaigns.
func ListPendingCampaignOrders(c *gin.Context) {
	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	var query dto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.Order{}).
		Where("campaign_id IN (?)", config.DB.Model(&models.Campaign{}).
			Select("id").
			Where("LOWER(chef) = LOWER(?)", user.Username))
	if query.CampaignID != nil {
		tx = tx.Where("campaign_id = ?", *query.CampaignID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var orders []models.Order
	if err := tx.Order("order_time").
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

// CompleteCampaignOrder marks an order delivered: the pending row is
// archived and the chef's lifetime counters and monthly sales column
// are advanced.
func CompleteCampaignOrder(c *gin.Context) {
	var input dto.CompleteOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, chef, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	var order models.Order
	if err := config.DB.
		Where("id = ?", input.OrderID).
		Where("campaign_id IN (?)", config.DB.Model(&models.Campaign{}).
			Select("id").
			Where("LOWER(chef) = LOWER(?)", user.Username)).
		First(&order).Error; err != nil {
		response.NotFound(c)
		return
	}

	now := time.Now()
	history := models.OrderHistory{
		OrderID:     order.ID,
		User:        order.User,
		UserAddress: order.UserAddress,
		UserPhone:   order.UserPhone,
		CampaignID:  order.CampaignID,
		Quantity:    order.Quantity,
		FoodItems:   order.FoodItems,
		FoodPrice:   order.FoodPrice,
		Chef:        user.Username,
		OrderTime:   order.OrderTime,
	}

	salesColumn := monthlySalesColumns[int(now.Month())-1]
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chef{}).
			Where("id = ?", chef.ID).
			Updates(map[string]interface{}{
				"total_orders_received": gorm.Expr("total_orders_received + 1"),
				"campaign_points":       gorm.Expr("campaign_points + 1"),
				salesColumn:             gorm.Expr(salesColumn+" + ?", order.FoodPrice),
			}).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, history)
}
