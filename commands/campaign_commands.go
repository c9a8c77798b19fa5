package commands

import (
	"github.com/Jahid-Hassan-Noor/food-now/models"

	"gorm.io/gorm"
)

// CampaignCommand is the common interface of campaign mutations.
type CampaignCommand interface {
	Execute() error
}

type CreateCampaignCommand struct {
	campaign *models.Campaign
	db       *gorm.DB
}

func NewCreateCampaignCommand(campaign *models.Campaign, db *gorm.DB) *CreateCampaignCommand {
	return &CreateCampaignCommand{
		campaign: campaign,
		db:       db,
	}
}

// Execute stores the campaign and bumps the chef's lifetime counter in
// one transaction.
func (c *CreateCampaignCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c.campaign).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chef{}).
			Where("chef_username = ?", c.campaign.Chef).
			UpdateColumn("total_campaigns", gorm.Expr("total_campaigns + 1")).Error
	})
}

// CloseCampaignCommand moves a campaign into a terminal status and
// archives it.
type CloseCampaignCommand struct {
	campaign *models.Campaign
	status   string
	db       *gorm.DB
}

func NewCloseCampaignCommand(campaign *models.Campaign, status string, db *gorm.DB) *CloseCampaignCommand {
	return &CloseCampaignCommand{
		campaign: campaign,
		status:   status,
		db:       db,
	}
}

func (c *CloseCampaignCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		c.campaign.Status = c.status
		if err := tx.Save(c.campaign).Error; err != nil {
			return err
		}

		history := models.CampaignHistory{
			CampaignID:          c.campaign.ID,
			Chef:                c.campaign.Chef,
			Title:               c.campaign.Title,
			CampaignDescription: c.campaign.CampaignDescription,
			Status:              c.status,
			FoodItems:           c.campaign.FoodItems,
			TotalOrders:         c.campaign.TotalOrders,
			StartTime:           c.campaign.StartTime,
			EndTime:             c.campaign.EndTime,
		}
		return tx.Create(&history).Error
	})
}
