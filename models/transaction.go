package models

import "time"

// PendingTransaction is a chef top-up or subscription request awaiting
// admin review. Revenue aggregation sums pending and completed rows
// together so money in review still shows up in dashboards.
type PendingTransaction struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Chef                   string    `gorm:"index;not null" json:"chef"`
	Type                   string    `gorm:"index;default:recharge" json:"type"`
	Status                 string    `gorm:"default:pending" json:"status"`
	Amount                 float64   `gorm:"default:0" json:"amount"`
	TransactionDescription string    `gorm:"type:text" json:"transactionDescription"`
	TransactionProof       string    `json:"transactionProof"`
	SubscriptionOptionID   *uint     `json:"subscriptionOptionId,omitempty"`
	SubscriptionMonths     int       `gorm:"default:0" json:"subscriptionMonths"`
	TransactionTime        time.Time `gorm:"index;autoCreateTime" json:"transactionTime"`
}

// TransactionHistory archives reviewed transactions (approved or rejected).
type TransactionHistory struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	TransactionID          uint      `gorm:"index" json:"transactionId"`
	Chef                   string    `gorm:"index;not null" json:"chef"`
	Type                   string    `gorm:"index" json:"type"`
	Status                 string    `json:"status"`
	Amount                 float64   `gorm:"default:0" json:"amount"`
	TransactionDescription string    `gorm:"type:text" json:"transactionDescription"`
	TransactionProof       string    `json:"transactionProof"`
	SubscriptionOptionID   *uint     `json:"subscriptionOptionId,omitempty"`
	SubscriptionMonths     int       `gorm:"default:0" json:"subscriptionMonths"`
	TransactionTime        time.Time `gorm:"index" json:"transactionTime"`
	ReviewedAt             time.Time `gorm:"autoCreateTime" json:"reviewedAt"`
}
