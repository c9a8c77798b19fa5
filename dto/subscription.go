package dto

import "time"

type SubscriptionOptionRequest struct {
	Name           string  `json:"name" binding:"required"`
	DurationMonths int     `json:"durationMonths" binding:"required"`
	Price          float64 `json:"price" binding:"required"`
	Description    string  `json:"description"`
}

type SubscriptionOptionResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	DurationMonths int     `json:"durationMonths"`
	Price          float64 `json:"price"`
	Description    string  `json:"description"`
}

// SubscriptionRequest asks for a plan; it creates a pending transaction.
type SubscriptionRequest struct {
	OptionID         uint   `json:"optionId" binding:"required"`
	TransactionProof string `json:"transactionProof"`
}

type SubscriptionStatusResponse struct {
	Chef               string     `json:"chef"`
	SubscriptionStatus string     `json:"subscriptionStatus"`
	SubscriptionEndsAt *time.Time `json:"subscriptionEndsAt,omitempty"`
}
