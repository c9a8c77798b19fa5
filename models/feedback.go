package models

import "time"

// Feedback categories
const (
	FeedbackCategorySupport  = "support"
	FeedbackCategoryFeedback = "feedback"
)

// Feedback priorities
const (
	FeedbackPriorityLow    = "low"
	FeedbackPriorityNormal = "normal"
	FeedbackPriorityHigh   = "high"
)

// Feedback statuses
const (
	FeedbackStatusOpen     = "open"
	FeedbackStatusInReview = "in_review"
	FeedbackStatusResolved = "resolved"
)

type UserFeedback struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User       string    `gorm:"index" json:"user"`
	Email      string    `json:"email"`
	Category   string    `gorm:"index;default:feedback" json:"category"`
	Subject    string    `json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Priority   string    `gorm:"default:normal" json:"priority"`
	Rating     *int      `json:"rating,omitempty"`
	Status     string    `gorm:"index;default:open" json:"status"`
	AdminNotes string    `gorm:"type:text" json:"adminNotes"`
}
