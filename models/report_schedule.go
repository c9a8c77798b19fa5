package models

import "time"

// Report schedule frequencies
const (
	ReportFrequencyWeekly  = "weekly"
	ReportFrequencyMonthly = "monthly"
)

// ReportSchedule drives the scheduled dashboard report dispatcher. One
// row per recipient email; NextRunAt is advanced after each delivery.
type ReportSchedule struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Email      string     `gorm:"unique;not null" json:"email"`
	Frequency  string     `gorm:"default:monthly" json:"frequency"`
	IsActive   bool       `json:"isActive"`
	NextRunAt  *time.Time `gorm:"index" json:"nextRunAt,omitempty"`
	LastSentAt *time.Time `json:"lastSentAt,omitempty"`
}
