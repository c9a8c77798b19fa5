package models

import (
	"time"
)

// Order is a pending order against a running campaign. FoodItems is the
// raw food-id payload as submitted by the client; the reporting layer
// parses it leniently (JSON array, JSON object keys, or comma list).
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	User        string    `gorm:"index;not null" json:"user"`
	UserAddress string    `json:"userAddress"`
	UserPhone   string    `json:"userPhone"`
	CampaignID  uint      `gorm:"index" json:"campaignId"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	FoodItems   string    `gorm:"type:text" json:"foodItems"`
	FoodPrice   float64   `gorm:"default:0" json:"foodPrice"`
	OrderTime   time.Time `gorm:"index;autoCreateTime" json:"orderTime"`
}

// OrderHistory archives completed orders.
type OrderHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"index" json:"orderId"`
	User        string    `gorm:"index" json:"user"`
	UserAddress string    `json:"userAddress"`
	UserPhone   string    `json:"userPhone"`
	CampaignID  uint      `json:"campaignId"`
	Quantity    int       `json:"quantity"`
	FoodItems   string    `gorm:"type:text" json:"foodItems"`
	FoodPrice   float64   `json:"foodPrice"`
	Chef        string    `gorm:"index" json:"chef"`
	OrderTime   time.Time `json:"orderTime"`
	CompletedAt time.Time `gorm:"autoCreateTime" json:"completedAt"`
}
