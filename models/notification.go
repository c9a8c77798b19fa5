package models

import (
	"time"

	"github.com/lib/pq"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;not null" json:"username"`
	Sender    string    `json:"sender"`
	Title     string    `json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Announcement is an admin broadcast fanned out to every user whose role
// appears in TargetRoles ("user", "chef", "admin").
type Announcement struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	TargetRoles pq.StringArray `gorm:"type:text[]" json:"targetRoles"`
	CreatedBy   string         `json:"createdBy"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
