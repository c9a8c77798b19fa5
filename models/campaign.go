package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// Campaign is a time-boxed food drop. FoodItems holds a JSON object of
// food id -> quantity, e.g. {"12": 3, "15": 1}.
type Campaign struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Chef                string          `gorm:"index;not null" json:"chef"`
	Title               string          `json:"title"`
	CampaignDescription string          `gorm:"type:text" json:"campaignDescription"`
	Status              string          `gorm:"index;default:scheduled" json:"status"`
	FoodItems           json.RawMessage `gorm:"type:jsonb" json:"foodItems"`
	QuantityAvailable   int             `gorm:"default:0" json:"quantityAvailable"`
	TotalOrders         int             `gorm:"default:0" json:"totalOrders"`
	StartTime           *time.Time      `gorm:"index" json:"startTime"`
	EndTime             *time.Time      `json:"endTime"`
	DeliveryTime        *time.Time      `json:"deliveryTime"`
}

// FoodQuantities decodes the FoodItems map. A nil map and an error are
// returned for malformed content; callers treat both as "no items".
func (c *Campaign) FoodQuantities() (map[string]int, error) {
	if len(c.FoodItems) == 0 {
		return map[string]int{}, nil
	}
	var items map[string]int
	if err := json.Unmarshal(c.FoodItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CampaignHistory is the archive row written when a campaign ends,
// expires or is cancelled.
type CampaignHistory struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	CreatedAt           time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	CampaignID          uint            `gorm:"index" json:"campaignId"`
	Chef                string          `gorm:"index" json:"chef"`
	Title               string          `json:"title"`
	CampaignDescription string          `gorm:"type:text" json:"campaignDescription"`
	Status              string          `json:"status"`
	FoodItems           json.RawMessage `gorm:"type:jsonb" json:"foodItems"`
	TotalOrders         int             `gorm:"default:0" json:"totalOrders"`
	StartTime           *time.Time      `json:"startTime"`
	EndTime             *time.Time      `json:"endTime"`
}
