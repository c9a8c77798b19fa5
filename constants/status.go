package constants

// User status
const (
	UserStatusActive = 1
	UserStatusBanned = 0
)

// Campaign status
const (
	CampaignStatusRunning   = "running"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
	CampaignStatusExpired   = "expired"
)

// Transaction status
const (
	TransactionStatusPending   = "pending"
	TransactionStatusApproved  = "approved"
	TransactionStatusRejected  = "rejected"
	TransactionStatusCompleted = "completed"
)

// Transaction type
const (
	TransactionTypeRecharge     = "recharge"
	TransactionTypeSubscription = "subscription"
)

// Subscription status
const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusInactive = "inactive"
	SubscriptionStatusPending  = "pending"
)
