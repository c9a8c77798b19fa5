package dto

import "time"

type CreateOrderRequest struct {
	CampaignID  uint   `json:"campaignId" binding:"required"`
	Quantity    int    `json:"quantity"`
	FoodItems   string `json:"foodItems" binding:"required"`
	UserAddress string `json:"userAddress"`
	UserPhone   string `json:"userPhone"`
}

type OrderResponse struct {
	ID          uint      `json:"id"`
	User        string    `json:"user"`
	UserAddress string    `json:"userAddress"`
	UserPhone   string    `json:"userPhone"`
	CampaignID  uint      `json:"campaignId"`
	Quantity    int       `json:"quantity"`
	FoodItems   string    `json:"foodItems"`
	FoodPrice   float64   `json:"foodPrice"`
	OrderTime   time.Time `json:"orderTime"`
}

type OrderHistoryResponse struct {
	ID          uint      `json:"id"`
	OrderID     uint      `json:"orderId"`
	User        string    `json:"user"`
	CampaignID  uint      `json:"campaignId"`
	Quantity    int       `json:"quantity"`
	FoodItems   string    `json:"foodItems"`
	FoodPrice   float64   `json:"foodPrice"`
	Chef        string    `json:"chef"`
	OrderTime   time.Time `json:"orderTime"`
	CompletedAt time.Time `json:"completedAt"`
}

type OrderListQuery struct {
	PageQuery
	CampaignID *uint  `form:"campaignId"`
	User       string `form:"user"`
}

// CompleteOrderRequest marks a pending order as delivered.
type CompleteOrderRequest struct {
	OrderID uint `json:"orderId" binding:"required"`
}
