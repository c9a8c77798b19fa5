package dto

import (
	"time"

	json "github.com/goccy/go-json"
)

type CreateCampaignRequest struct {
	Title               string          `json:"title" binding:"required"`
	CampaignDescription string          `json:"campaignDescription"`
	FoodItems           json.RawMessage `json:"foodItems" binding:"required"`
	QuantityAvailable   int             `json:"quantityAvailable"`
	StartTime           time.Time       `json:"startTime" binding:"required"`
	EndTime             *time.Time      `json:"endTime"`
	DeliveryTime        *time.Time      `json:"deliveryTime"`
}

type UpdateCampaignRequest struct {
	Title               *string         `json:"title"`
	CampaignDescription *string         `json:"campaignDescription"`
	FoodItems           json.RawMessage `json:"foodItems"`
	QuantityAvailable   *int            `json:"quantityAvailable"`
	EndTime             *time.Time      `json:"endTime"`
	DeliveryTime        *time.Time      `json:"deliveryTime"`
}

type CampaignResponse struct {
	ID                  uint            `json:"id"`
	Chef                string          `json:"chef"`
	Title               string          `json:"title"`
	CampaignDescription string          `json:"campaignDescription"`
	Status              string          `json:"status"`
	FoodItems           json.RawMessage `json:"foodItems"`
	QuantityAvailable   int             `json:"quantityAvailable"`
	TotalOrders         int             `json:"totalOrders"`
	StartTime           *time.Time      `json:"startTime"`
	EndTime             *time.Time      `json:"endTime"`
	DeliveryTime        *time.Time      `json:"deliveryTime"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// CampaignDetailResponse adds the resolved food rows to a campaign.
type CampaignDetailResponse struct {
	CampaignResponse
	Foods []FoodResponse `json:"foods"`
}

type CampaignListQuery struct {
	PageQuery
	Chef   string `form:"chef"`
	Status string `form:"status"`
	Search string `form:"search"`
}
