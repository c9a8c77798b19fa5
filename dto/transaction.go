package dto

import "time"

// TopUpRequest is a chef balance recharge awaiting admin review.
type TopUpRequest struct {
	Amount                 float64 `json:"amount" binding:"required"`
	TransactionDescription string  `json:"transactionDescription"`
	TransactionProof       string  `json:"transactionProof"`
}

// ReviewTransactionRequest approves or rejects a pending transaction.
type ReviewTransactionRequest struct {
	TransactionID uint   `json:"transactionId" binding:"required"`
	Approve       bool   `json:"approve"`
	Note          string `json:"note"`
}

type TransactionResponse struct {
	ID                     uint      `json:"id"`
	Chef                   string    `json:"chef"`
	Type                   string    `json:"type"`
	Status                 string    `json:"status"`
	Amount                 float64   `json:"amount"`
	TransactionDescription string    `json:"transactionDescription"`
	TransactionProof       string    `json:"transactionProof"`
	SubscriptionOptionID   *uint     `json:"subscriptionOptionId,omitempty"`
	SubscriptionMonths     int       `json:"subscriptionMonths,omitempty"`
	TransactionTime        time.Time `json:"transactionTime"`
}

type TransactionListQuery struct {
	PageQuery
	Chef   string `form:"chef"`
	Type   string `form:"type"`
	Status string `form:"status"`
}
