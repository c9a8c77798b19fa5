package models

import "time"

type Food struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	FoodName        string    `gorm:"not null" json:"foodName"`
	FoodDescription string    `gorm:"type:text" json:"foodDescription"`
	Chef            string    `gorm:"index;not null" json:"chef"`
	FoodPrice       float64   `gorm:"default:0" json:"foodPrice"`
	FoodImage       string    `json:"foodImage"`
	IsListed        bool      `json:"isListed"`
}
