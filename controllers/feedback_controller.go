package controllers

import (
	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"

	"github.com/gin-gonic/gin"
)

func feedbackResponse(feedback models.UserFeedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:         feedback.ID,
		User:       feedback.User,
		Email:      feedback.Email,
		Category:   feedback.Category,
		Subject:    feedback.Subject,
		Message:    feedback.Message,
		Priority:   feedback.Priority,
		Rating:     feedback.Rating,
		Status:     feedback.Status,
		AdminNotes: feedback.AdminNotes,
		CreatedAt:  feedback.CreatedAt,
		UpdatedAt:  feedback.UpdatedAt,
	}
}

var feedbackCategories = map[string]bool{
	models.FeedbackCategorySupport:  true,
	models.FeedbackCategoryFeedback: true,
}

var feedbackPriorities = map[string]bool{
	models.FeedbackPriorityLow:    true,
	models.FeedbackPriorityNormal: true,
	models.FeedbackPriorityHigh:   true,
}

var feedbackStatuses = map[string]bool{
	models.FeedbackStatusOpen:     true,
	models.FeedbackStatusInReview: true,
	models.FeedbackStatusResolved: true,
}

// CreateFeedback files a support ticket or product feedback.
func CreateFeedback(c *gin.Context) {
	var input dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	category := input.Category
	if category == "" {
		category = models.FeedbackCategoryFeedback
	}
	if !feedbackCategories[category] {
		response.BadRequest(c, "Category must be support or feedback")
		return
	}

	priority := input.Priority
	if priority == "" {
		priority = models.FeedbackPriorityNormal
	}
	if !feedbackPriorities[priority] {
		response.BadRequest(c, "Priority must be low, normal or high")
		return
	}

	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		response.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	feedback := models.UserFeedback{
		User:     user.Username,
		Email:    user.Email,
		Category: category,
		Subject:  input.Subject,
		Message:  input.Message,
		Priority: priority,
		Rating:   input.Rating,
		Status:   models.FeedbackStatusOpen,
	}
	if err := config.DB.Create(&feedback).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, feedbackResponse(feedback))
}

// ListMyFeedback returns the caller's own tickets.
func ListMyFeedback(c *gin.Context) {
	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var feedbacks []models.UserFeedback
	if err := config.DB.Where(`"user" = ?`, user.Username).
		Order("created_at DESC").
		Find(&feedbacks).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		results = append(results, feedbackResponse(feedback))
	}
	response.Success(c, results)
}

// ListFeedback is the admin triage view.
func ListFeedback(c *gin.Context) {
	var query dto.FeedbackListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.UserFeedback{})
	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.Priority != "" {
		tx = tx.Where("priority = ?", query.Priority)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var feedbacks []models.UserFeedback
	if err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&feedbacks).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		results = append(results, feedbackResponse(feedback))
	}
	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// UpdateFeedback is the admin triage patch: status, priority, notes.
func UpdateFeedback(c *gin.Context) {
	var input dto.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var feedback models.UserFeedback
	if err := config.DB.First(&feedback, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Status != nil {
		if !feedbackStatuses[*input.Status] {
			response.BadRequest(c, "Status must be open, in_review or resolved")
			return
		}
		feedback.Status = *input.Status
	}
	if input.Priority != nil {
		if !feedbackPriorities[*input.Priority] {
			response.BadRequest(c, "Priority must be low, normal or high")
			return
		}
		feedback.Priority = *input.Priority
	}
	if input.AdminNotes != nil {
		feedback.AdminNotes = *input.AdminNotes
	}

	if err := config.DB.Save(&feedback).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, feedbackResponse(feedback))
}
