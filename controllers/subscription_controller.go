package controllers

import (
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func subscriptionOptionResponse(option models.SubscriptionOption) dto.SubscriptionOptionResponse {
	return dto.SubscriptionOptionResponse{
		ID:             option.ID,
		Name:           option.Name,
		DurationMonths: option.DurationMonths,
		Price:          option.Price,
		Description:    option.Description,
	}
}

func ListSubscriptionOptions(c *gin.Context) {
	var options []models.SubscriptionOption
	if err := config.DB.Order("duration_months").Find(&options).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.SubscriptionOptionResponse, 0, len(options))
	for _, option := range options {
		results = append(results, subscriptionOptionResponse(option))
	}
	response.Success(c, results)
}

func CreateSubscriptionOption(c *gin.Context) {
	var input dto.SubscriptionOptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if input.DurationMonths < 1 || input.Price < 0 {
		response.BadRequest(c, "Duration and price must be positive")
		return
	}

	option := models.SubscriptionOption{
		Name:           input.Name,
		DurationMonths: input.DurationMonths,
		Price:          input.Price,
		Description:    input.Description,
	}
	if err := config.DB.Create(&option).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, subscriptionOptionResponse(option))
}

func UpdateSubscriptionOption(c *gin.Context) {
	var input dto.SubscriptionOptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var option models.SubscriptionOption
	if err := config.DB.First(&option, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	option.Name = input.Name
	option.DurationMonths = input.DurationMonths
	option.Price = input.Price
	option.Description = input.Description
	if err := config.DB.Save(&option).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, subscriptionOptionResponse(option))
}

func DeleteSubscriptionOption(c *gin.Context) {
	if err := config.DB.Delete(&models.SubscriptionOption{}, c.Param("id")).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}

// GetSubscriptionStatus returns the authenticated chef's subscription.
func GetSubscriptionStatus(c *gin.Context) {
	user, chef, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	status := chef.SubscriptionStatus
	if status == constants.SubscriptionStatusActive &&
		chef.SubscriptionEndsAt != nil &&
		chef.SubscriptionEndsAt.Before(time.Now()) {
		status = constants.SubscriptionStatusInactive
	}

	response.Success(c, dto.SubscriptionStatusResponse{
		Chef:               user.Username,
		SubscriptionStatus: status,
		SubscriptionEndsAt: chef.SubscriptionEndsAt,
	})
}

// RequestSubscription files a subscription purchase for admin review.
func RequestSubscription(c *gin.Context) {
	var input dto.SubscriptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	var option models.SubscriptionOption
	if err := config.DB.First(&option, input.OptionID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var pendingCount int64
	if err := config.DB.Model(&models.PendingTransaction{}).
		Where("chef = ? AND type = ?", user.Username, constants.TransactionTypeSubscription).
		Count(&pendingCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if pendingCount > 0 {
		response.BadRequest(c, "A subscription request is already pending review")
		return
	}

	transaction := models.PendingTransaction{
		Chef:                 user.Username,
		Type:                 constants.TransactionTypeSubscription,
		Status:               constants.TransactionStatusPending,
		Amount:               option.Price,
		TransactionProof:     input.TransactionProof,
		SubscriptionOptionID: &option.ID,
		SubscriptionMonths:   option.DurationMonths,
	}
	if err := config.DB.Create(&transaction).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, transactionResponse(transaction))
}

// applySubscription activates or extends a chef's subscription when the
// admin approves the purchase.
func applySubscription(tx *gorm.DB, chef *models.Chef, transaction *models.PendingTransaction) error {
	months := transaction.SubscriptionMonths
	if months < 1 {
		months = 1
	}

	base := time.Now()
	if chef.SubscriptionStatus == constants.SubscriptionStatusActive &&
		chef.SubscriptionEndsAt != nil &&
		chef.SubscriptionEndsAt.After(base) {
		base = *chef.SubscriptionEndsAt
	}
	endsAt := base.AddDate(0, months, 0)

	return tx.Model(chef).
		Updates(map[string]interface{}{
			"subscription_status":  constants.SubscriptionStatusActive,
			"subscription_ends_at": endsAt,
		}).Error
}
