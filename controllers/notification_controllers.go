package controllers

import (
	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListMyNotifications returns the caller's notifications, newest first.
func ListMyNotifications(c *gin.Context) {
	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.Notification{}).Where("username = ?", user.Username)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var notifications []models.Notification
	if err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.NotificationResponse, 0, len(notifications))
	for _, row := range notifications {
		results = append(results, dto.NotificationResponse{
			ID:        row.ID,
			Sender:    row.Sender,
			Title:     row.Title,
			Message:   row.Message,
			IsRead:    row.IsRead,
			CreatedAt: row.CreatedAt,
		})
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// MarkNotificationsRead flags the given notifications as read.
func MarkNotificationsRead(c *gin.Context) {
	var input dto.MarkReadRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := config.DB.Model(&models.Notification{}).
		Where("username = ? AND id IN ?", user.Username, input.IDs).
		Update("is_read", true).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

var announcementRoles = map[string]int{
	"user":  constants.RoleUser,
	"chef":  constants.RoleChef,
	"admin": constants.RoleAdmin,
}

// CreateAnnouncement persists an admin broadcast, fans a notification
// row out to every targeted account and pushes it over the websocket.
func (nc *NotificationController) CreateAnnouncement(c *gin.Context) {
	var input dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	admin, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	roleValues := make([]int, 0, len(input.TargetRoles))
	for _, roleName := range input.TargetRoles {
		value, ok := announcementRoles[roleName]
		if !ok {
			response.BadRequest(c, "Target roles must be user, chef or admin")
			return
		}
		roleValues = append(roleValues, value)
	}

	announcement := models.Announcement{
		Title:       input.Title,
		Message:     input.Message,
		TargetRoles: pq.StringArray(input.TargetRoles),
		CreatedBy:   admin.Username,
	}

	err = nc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&announcement).Error; err != nil {
			return err
		}

		var targets []models.User
		if err := tx.Where("role IN ?", roleValues).Find(&targets).Error; err != nil {
			return err
		}

		notifications := make([]models.Notification, 0, len(targets))
		for _, target := range targets {
			notifications = append(notifications, models.Notification{
				Username: target.Username,
				Sender:   admin.Username,
				Title:    input.Title,
				Message:  input.Message,
			})
		}
		if len(notifications) == 0 {
			return nil
		}
		return tx.CreateInBatches(notifications, 200).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	payload := notification.BuildAnnouncement(input.Title, input.Message, admin.Username)
	if err := nc.Broadcast(payload); err != nil {
		nc.logger.Error("announcement broadcast failed: %v", err)
	}

	response.Success(c, announcement)
}

// ListAnnouncements returns past broadcasts for the admin console.
func ListAnnouncements(c *gin.Context) {
	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	var total int64
	if err := config.DB.Model(&models.Announcement{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var announcements []models.Announcement
	if err := config.DB.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&announcements).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, announcements, page, limit, int(total))
}
