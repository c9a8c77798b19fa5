package dto

import "time"

type CreateFeedbackRequest struct {
	Category string `json:"category"`
	Subject  string `json:"subject"`
	Message  string `json:"message" binding:"required"`
	Priority string `json:"priority"`
	Rating   *int   `json:"rating"`
}

// UpdateFeedbackRequest is the admin-side triage patch.
type UpdateFeedbackRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AdminNotes *string `json:"adminNotes"`
}

type FeedbackResponse struct {
	ID         uint      `json:"id"`
	User       string    `json:"user"`
	Email      string    `json:"email"`
	Category   string    `json:"category"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Priority   string    `json:"priority"`
	Rating     *int      `json:"rating,omitempty"`
	Status     string    `json:"status"`
	AdminNotes string    `json:"adminNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type FeedbackListQuery struct {
	PageQuery
	Category string `form:"category"`
	Status   string `form:"status"`
	Priority string `form:"priority"`
}
