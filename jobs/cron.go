package jobs

import (
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/services"
	"github.com/Jahid-Hassan-Noor/food-now/services/logger"
	"github.com/Jahid-Hassan-Noor/food-now/services/reporting"
	"github.com/Jahid-Hassan-Noor/food-now/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CampaignCloser moves campaigns across their lifecycle boundaries.
type CampaignCloser interface {
	ExpireCampaigns(now time.Time) error
}

var campaignCloser CampaignCloser

// SetCampaignCloser overrides the default campaign lifecycle sweep.
func SetCampaignCloser(closer CampaignCloser) {
	campaignCloser = closer
}

// InitCronJobs registers the recurring jobs and starts the scheduler.
func InitCronJobs(c *cron.Cron) error {
	// Campaign lifecycle sweep at midnight.
	if _, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("running campaign lifecycle sweep at %v", now)
		closer := campaignCloser
		if closer == nil {
			closer = defaultCampaignCloser{db: config.DB}
		}
		if err := closer.ExpireCampaigns(now); err != nil {
			utils.LogError("campaign lifecycle sweep failed: %v", err)
		}
	}); err != nil {
		return err
	}

	// Scheduled dashboard reports every 15 minutes.
	if _, err := c.AddFunc("*/15 * * * *", func() {
		log := logger.NewDefaultLogger(logger.InfoLevel)
		sent, failed := reporting.DispatchDueReports(config.DB, services.Mail, time.Now(), log)
		if sent > 0 || failed > 0 {
			utils.LogInfo("report dispatch finished: sent=%d failed=%d", sent, failed)
		}
	}); err != nil {
		return err
	}

	c.Start()
	utils.LogInfo("cron jobs initialized")
	return nil
}

type defaultCampaignCloser struct {
	db *gorm.DB
}

// ExpireCampaigns starts scheduled campaigns whose window has opened
// and expires running ones whose end time has passed.
func (d defaultCampaignCloser) ExpireCampaigns(now time.Time) error {
	if err := d.db.Model(&models.Campaign{}).
		Where("status = ?", constants.CampaignStatusScheduled).
		Where("start_time IS NOT NULL AND start_time <= ?", now).
		Update("status", constants.CampaignStatusRunning).Error; err != nil {
		return err
	}

	var expired []models.Campaign
	if err := d.db.
		Where("status = ?", constants.CampaignStatusRunning).
		Where("end_time IS NOT NULL AND end_time < ?", now).
		Find(&expired).Error; err != nil {
		return err
	}

	for _, campaign := range expired {
		campaign.Status = constants.CampaignStatusExpired
		if err := d.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&campaign).Error; err != nil {
				return err
			}
			history := models.CampaignHistory{
				CampaignID:          campaign.ID,
				Chef:                campaign.Chef,
				Title:               campaign.Title,
				CampaignDescription: campaign.CampaignDescription,
				Status:              constants.CampaignStatusExpired,
				FoodItems:           campaign.FoodItems,
				TotalOrders:         campaign.TotalOrders,
				StartTime:           campaign.StartTime,
				EndTime:             campaign.EndTime,
			}
			return tx.Create(&history).Error
		}); err != nil {
			utils.LogError("expiring campaign %d failed: %v", campaign.ID, err)
		}
	}

	return nil
}
