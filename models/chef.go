package models

import "time"

// Chef is the seller profile keyed by username. Monthly sales columns are
// stamped when chef orders complete and feed the legacy metrics block of
// the chef dashboard.
type Chef struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	ChefUsername        string     `gorm:"unique;not null" json:"chefUsername"`
	ChefDescription     string     `gorm:"type:text" json:"chefDescription"`
	ChefImage           string     `json:"chefImage"`
	Balance             float64    `gorm:"default:0" json:"balance"`
	TotalDeposit        float64    `gorm:"default:0" json:"totalDeposit"`
	TotalCampaigns      int        `gorm:"default:0" json:"totalCampaigns"`
	TotalOrdersReceived int        `gorm:"default:0" json:"totalOrdersReceived"`
	CampaignPoints      int        `gorm:"default:0" json:"campaignPoints"`
	SubscriptionStatus  string     `gorm:"default:inactive" json:"subscriptionStatus"`
	SubscriptionEndsAt  *time.Time `json:"subscriptionEndsAt,omitempty"`

	SalesJanuary   float64 `gorm:"default:0" json:"salesJanuary"`
	SalesFebruary  float64 `gorm:"default:0" json:"salesFebruary"`
	SalesMarch     float64 `gorm:"default:0" json:"salesMarch"`
	SalesApril     float64 `gorm:"default:0" json:"salesApril"`
	SalesMay       float64 `gorm:"default:0" json:"salesMay"`
	SalesJune      float64 `gorm:"default:0" json:"salesJune"`
	SalesJuly      float64 `gorm:"default:0" json:"salesJuly"`
	SalesAugust    float64 `gorm:"default:0" json:"salesAugust"`
	SalesSeptember float64 `gorm:"default:0" json:"salesSeptember"`
	SalesOctober   float64 `gorm:"default:0" json:"salesOctober"`
	SalesNovember  float64 `gorm:"default:0" json:"salesNovember"`
	SalesDecember  float64 `gorm:"default:0" json:"salesDecember"`
}

// MonthlySales returns the twelve sales columns in calendar order.
func (c *Chef) MonthlySales() [12]float64 {
	return [12]float64{
		c.SalesJanuary, c.SalesFebruary, c.SalesMarch, c.SalesApril,
		c.SalesMay, c.SalesJune, c.SalesJuly, c.SalesAugust,
		c.SalesSeptember, c.SalesOctober, c.SalesNovember, c.SalesDecember,
	}
}
