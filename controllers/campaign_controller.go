package controllers

import (
	"sort"
	"strings"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/builders"
	"github.com/Jahid-Hassan-Noor/food-now/commands"
	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/services/reporting"
	"github.com/Jahid-Hassan-Noor/food-now/validator"

	"github.com/gin-gonic/gin"
)

func campaignResponse(campaign models.Campaign) dto.CampaignResponse {
	return dto.CampaignResponse{
		ID:                  campaign.ID,
		Chef:                campaign.Chef,
		Title:               campaign.Title,
		CampaignDescription: campaign.CampaignDescription,
		Status:              campaign.Status,
		FoodItems:           campaign.FoodItems,
		QuantityAvailable:   campaign.QuantityAvailable,
		TotalOrders:         campaign.TotalOrders,
		StartTime:           campaign.StartTime,
		EndTime:             campaign.EndTime,
		DeliveryTime:        campaign.DeliveryTime,
		CreatedAt:           campaign.CreatedAt,
	}
}

// CreateCampaign opens a new food drop for the authenticated chef.
func CreateCampaign(c *gin.Context) {
	var input dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, chef, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}
	if chef.SubscriptionStatus != constants.SubscriptionStatusActive {
		response.BadRequest(c, "An active subscription is required to run campaigns")
		return
	}

	campaign := builders.NewCampaignBuilder().
		WithChef(user.Username).
		WithTitle(input.Title, input.CampaignDescription).
		WithFoodItems(input.FoodItems).
		WithQuantity(input.QuantityAvailable).
		WithSchedule(input.StartTime, input.EndTime, input.DeliveryTime).
		Build()

	if err := validator.ValidateCampaign(campaign); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := commands.NewCreateCampaignCommand(campaign, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, campaignResponse(*campaign))
}

// ListCurrentCampaigns returns running and scheduled campaigns, fuzzily
// ranked when a search query is present.
func ListCurrentCampaigns(c *gin.Context) {
	var query dto.CampaignListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.Campaign{}).
		Where("status IN ?", []string{constants.CampaignStatusRunning, constants.CampaignStatusScheduled})
	if query.Chef != "" {
		tx = tx.Where("LOWER(chef) = LOWER(?)", query.Chef)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	var campaigns []models.Campaign
	if err := tx.Order("start_time DESC").Find(&campaigns).Error; err != nil {
		response.ServerError(c)
		return
	}

	if query.Search != "" {
		campaigns = rankCampaignsByQuery(query.Search, campaigns)
	}

	total := len(campaigns)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]dto.CampaignResponse, 0, end-start)
	for _, campaign := range campaigns[start:end] {
		results = append(results, campaignResponse(campaign))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

type scoredCampaign struct {
	campaign models.Campaign
	score    float64
}

func rankCampaignsByQuery(query string, campaigns []models.Campaign) []models.Campaign {
	normalizedQuery := normalizeInput(query)

	scored := make([]scoredCampaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		title := normalizeInput(campaign.Title)
		score := calculateSimilarity(normalizedQuery, title)
		if strings.Contains(title, normalizedQuery) {
			score += 0.4
		}
		if strings.Contains(normalizeInput(campaign.CampaignDescription), normalizedQuery) {
			score += 0.1
		}
		if score > 0.3 {
			scored = append(scored, scoredCampaign{campaign: campaign, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]models.Campaign, 0, len(scored))
	for _, entry := range scored {
		ranked = append(ranked, entry.campaign)
	}
	return ranked
}

// GetCampaign returns a campaign together with its resolved food rows.
func GetCampaign(c *gin.Context) {
	var campaign models.Campaign
	if err := config.DB.First(&campaign, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	foodIDs := reporting.ParseFoodIDs(string(campaign.FoodItems))
	var foods []models.Food
	if len(foodIDs) > 0 {
		if err := config.DB.Where("id IN ?", foodIDs).Find(&foods).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	foodResponses := make([]dto.FoodResponse, 0, len(foods))
	for _, food := range foods {
		foodResponses = append(foodResponses, foodResponse(food))
	}

	response.Success(c, dto.CampaignDetailResponse{
		CampaignResponse: campaignResponse(campaign),
		Foods:            foodResponses,
	})
}

func loadOwnCampaign(c *gin.Context) (*models.Campaign, bool) {
	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return nil, false
	}

	var campaign models.Campaign
	if err := config.DB.Where("id = ? AND LOWER(chef) = LOWER(?)", c.Param("id"), user.Username).First(&campaign).Error; err != nil {
		response.NotFound(c)
		return nil, false
	}
	return &campaign, true
}

// EndCampaign completes a running campaign and archives it.
func EndCampaign(c *gin.Context) {
	campaign, ok := loadOwnCampaign(c)
	if !ok {
		return
	}
	if campaign.Status != constants.CampaignStatusRunning {
		response.BadRequest(c, "Only running campaigns can be ended")
		return
	}

	now := time.Now()
	campaign.EndTime = &now
	if err := commands.NewCloseCampaignCommand(campaign, constants.CampaignStatusCompleted, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, campaignResponse(*campaign))
}

// CancelCampaign cancels a scheduled or running campaign.
func CancelCampaign(c *gin.Context) {
	campaign, ok := loadOwnCampaign(c)
	if !ok {
		return
	}
	switch campaign.Status {
	case constants.CampaignStatusRunning, constants.CampaignStatusScheduled:
	default:
		response.BadRequest(c, "Campaign is already closed")
		return
	}

	if err := commands.NewCloseCampaignCommand(campaign, constants.CampaignStatusCancelled, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, campaignResponse(*campaign))
}

// ResumeCampaign reopens a cancelled campaign whose window has not
// passed yet.
func ResumeCampaign(c *gin.Context) {
	campaign, ok := loadOwnCampaign(c)
	if !ok {
		return
	}
	if campaign.Status != constants.CampaignStatusCancelled {
		response.BadRequest(c, "Only cancelled campaigns can be resumed")
		return
	}
	if campaign.EndTime != nil && campaign.EndTime.Before(time.Now()) {
		response.BadRequest(c, "Campaign window has already passed")
		return
	}

	status := constants.CampaignStatusScheduled
	if campaign.StartTime != nil && !campaign.StartTime.After(time.Now()) {
		status = constants.CampaignStatusRunning
	}
	campaign.Status = status

	if err := config.DB.Save(campaign).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, campaignResponse(*campaign))
}

// GetCampaignHistory lists a chef's archived campaigns.
func GetCampaignHistory(c *gin.Context) {
	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.CampaignHistory{}).Where("LOWER(chef) = LOWER(?)", user.Username)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var history []models.CampaignHistory
	if err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&history).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, history, page, limit, int(total))
}
