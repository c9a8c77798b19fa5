package builders

import (
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/models"

	json "github.com/goccy/go-json"
)

// CampaignBuilder assembles a campaign step by step.
type CampaignBuilder struct {
	campaign *models.Campaign
}

func NewCampaignBuilder() *CampaignBuilder {
	return &CampaignBuilder{
		campaign: &models.Campaign{
			Status: constants.CampaignStatusScheduled,
		},
	}
}

func (b *CampaignBuilder) WithChef(chef string) *CampaignBuilder {
	b.campaign.Chef = chef
	return b
}

func (b *CampaignBuilder) WithTitle(title, description string) *CampaignBuilder {
	b.campaign.Title = title
	b.campaign.CampaignDescription = description
	return b
}

func (b *CampaignBuilder) WithFoodItems(foodItems json.RawMessage) *CampaignBuilder {
	b.campaign.FoodItems = foodItems
	return b
}

func (b *CampaignBuilder) WithQuantity(quantity int) *CampaignBuilder {
	b.campaign.QuantityAvailable = quantity
	return b
}

func (b *CampaignBuilder) WithSchedule(start time.Time, end, delivery *time.Time) *CampaignBuilder {
	b.campaign.StartTime = &start
	b.campaign.EndTime = end
	b.campaign.DeliveryTime = delivery
	return b
}

// Build finalizes the campaign; a start time already in the past makes
// it running immediately.
func (b *CampaignBuilder) Build() *models.Campaign {
	if b.campaign.StartTime != nil && !b.campaign.StartTime.After(time.Now()) {
		b.campaign.Status = constants.CampaignStatusRunning
	}
	return b.campaign
}
