package controllers

import (
	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func transactionResponse(tx models.PendingTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                     tx.ID,
		Chef:                   tx.Chef,
		Type:                   tx.Type,
		Status:                 tx.Status,
		Amount:                 tx.Amount,
		TransactionDescription: tx.TransactionDescription,
		TransactionProof:       tx.TransactionProof,
		SubscriptionOptionID:   tx.SubscriptionOptionID,
		SubscriptionMonths:     tx.SubscriptionMonths,
		TransactionTime:        tx.TransactionTime,
	}
}

// CreateTopUp files a chef balance recharge for admin review.
func CreateTopUp(c *gin.Context) {
	var input dto.TopUpRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, _, err := loadCurrentChef(c)
	if err != nil {
		response.Forbidden(c)
		return
	}

	transaction := models.PendingTransaction{
		Chef:                   user.Username,
		Type:                   constants.TransactionTypeRecharge,
		Status:                 constants.TransactionStatusPending,
		Amount:                 input.Amount,
		TransactionDescription: input.TransactionDescription,
		TransactionProof:       input.TransactionProof,
	}
	if err := validator.ValidateTransaction(&transaction); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&transaction).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, transactionResponse(transaction))
}

// ListTransactions shows pending transactions. Chefs see their own;
// admins see everything with optional filters.
func ListTransactions(c *gin.Context) {
	var query dto.TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.PendingTransaction{})
	if currentRole(c) == constants.RoleAdmin {
		if query.Chef != "" {
			tx = tx.Where("LOWER(chef) = LOWER(?)", query.Chef)
		}
	} else {
		user, _, err := loadCurrentChef(c)
		if err != nil {
			response.Forbidden(c)
			return
		}
		tx = tx.Where("chef = ?", user.Username)
	}
	if query.Type != "" {
		tx = tx.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var transactions []models.PendingTransaction
	if err := tx.Order("transaction_time DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		results = append(results, transactionResponse(transaction))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// ReviewTransaction approves or rejects a pending transaction. Approval
// credits the chef: recharges add to the balance, subscriptions extend
// the subscription window.
func ReviewTransaction(c *gin.Context) {
	var input dto.ReviewTransactionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var transaction models.PendingTransaction
	if err := config.DB.First(&transaction, input.TransactionID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if transaction.Status != constants.TransactionStatusPending {
		response.BadRequest(c, "Transaction was already reviewed")
		return
	}

	status := constants.TransactionStatusRejected
	if input.Approve {
		status = constants.TransactionStatusApproved
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if input.Approve {
			if err := applyApprovedTransaction(tx, &transaction); err != nil {
				return err
			}
		}

		history := models.TransactionHistory{
			TransactionID:          transaction.ID,
			Chef:                   transaction.Chef,
			Type:                   transaction.Type,
			Status:                 status,
			Amount:                 transaction.Amount,
			TransactionDescription: transaction.TransactionDescription,
			TransactionProof:       transaction.TransactionProof,
			SubscriptionOptionID:   transaction.SubscriptionOptionID,
			SubscriptionMonths:     transaction.SubscriptionMonths,
			TransactionTime:        transaction.TransactionTime,
		}
		if input.Note != "" {
			history.TransactionDescription = input.Note
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PendingTransaction{}, transaction.ID).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"status": status})
}

func applyApprovedTransaction(tx *gorm.DB, transaction *models.PendingTransaction) error {
	var chef models.Chef
	if err := tx.Where("chef_username = ?", transaction.Chef).First(&chef).Error; err != nil {
		return err
	}

	if transaction.Type == constants.TransactionTypeSubscription {
		return applySubscription(tx, &chef, transaction)
	}

	return tx.Model(&chef).
		Updates(map[string]interface{}{
			"balance":       gorm.Expr("balance + ?", transaction.Amount),
			"total_deposit": gorm.Expr("total_deposit + ?", transaction.Amount),
		}).Error
}

// GetTransactionHistory lists reviewed transactions for the caller.
func GetTransactionHistory(c *gin.Context) {
	var query dto.TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.TransactionHistory{})
	if currentRole(c) == constants.RoleAdmin {
		if query.Chef != "" {
			tx = tx.Where("LOWER(chef) = LOWER(?)", query.Chef)
		}
	} else {
		user, _, err := loadCurrentChef(c)
		if err != nil {
			response.Forbidden(c)
			return
		}
		tx = tx.Where("chef = ?", user.Username)
	}
	if query.Type != "" {
		tx = tx.Where("type = ?", query.Type)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var history []models.TransactionHistory
	if err := tx.Order("reviewed_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&history).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, history, page, limit, int(total))
}
