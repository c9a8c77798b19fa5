package models

import "time"

type SubscriptionOption struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name           string    `gorm:"unique;not null" json:"name"`
	DurationMonths int       `gorm:"default:1" json:"durationMonths"`
	Price          float64   `gorm:"default:0" json:"price"`
	Description    string    `gorm:"type:text" json:"description"`
}
