package dto

import "time"

type ChefResponse struct {
	ID                  uint       `json:"id"`
	ChefUsername        string     `json:"chefUsername"`
	ChefDescription     string     `json:"chefDescription"`
	ChefImage           string     `json:"chefImage"`
	Balance             float64    `json:"balance"`
	TotalDeposit        float64    `json:"totalDeposit"`
	TotalCampaigns      int        `json:"totalCampaigns"`
	TotalOrdersReceived int        `json:"totalOrdersReceived"`
	CampaignPoints      int        `json:"campaignPoints"`
	SubscriptionStatus  string     `json:"subscriptionStatus"`
	SubscriptionEndsAt  *time.Time `json:"subscriptionEndsAt,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type UpdateChefRequest struct {
	ChefDescription string `json:"chefDescription"`
	ChefImage       string `json:"chefImage"`
}

// ChefListQuery supports fuzzy name search over chef profiles.
type ChefListQuery struct {
	PageQuery
	Search string `form:"search"`
}
