package controllers

import (
	"net/http"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	apperrors "github.com/Jahid-Hassan-Noor/food-now/errors"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/services"
	"github.com/Jahid-Hassan-Noor/food-now/services/logger"
	"github.com/Jahid-Hassan-Noor/food-now/services/reporting"
	"github.com/Jahid-Hassan-Noor/food-now/utils"
	"github.com/Jahid-Hassan-Noor/food-now/validator"

	"github.com/gin-gonic/gin"
)

func resolveDashboardRange(c *gin.Context, query dto.DashboardQuery) (*reporting.RangeInfo, bool) {
	info, err := reporting.ResolveRange(query.Range, query.Start, query.End)
	if err != nil {
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.BadRequest(c, appErr.Message)
		} else {
			response.BadRequest(c, err.Error())
		}
		return nil, false
	}
	return info, true
}

// GetAdminDashboard aggregates the marketplace-wide dashboard for the
// requested window. With ?export_format=csv|pdf the same payload is
// rendered as a file download instead of JSON.
func GetAdminDashboard(c *gin.Context) {
	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	info, ok := resolveDashboardRange(c, query.DashboardQuery)
	if !ok {
		return
	}

	payload, err := reporting.NewService(config.DB).BuildDashboardPayload(info)
	if err != nil {
		response.ServerError(c)
		return
	}

	var content []byte
	var contentType string
	switch query.Format {
	case "":
		response.Success(c, payload)
		return
	case "csv":
		content = reporting.BuildDashboardCSV(payload)
		contentType = "text/csv"
	case "pdf":
		content = reporting.BuildDashboardPDF(payload)
		contentType = "application/pdf"
		utils.LogInfo("dashboard PDF export: %d pages, %d bytes", reporting.PageCount(content), len(content))
	default:
		response.BadRequest(c, "Export format must be csv or pdf")
		return
	}

	filename := reporting.ReportFilename(payload, query.Format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, content)
}

// GetUserDashboard returns the caller's order counters and recent
// activity.
func GetUserDashboard(c *gin.Context) {
	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var pendingOrders int64
	if err := config.DB.Model(&models.Order{}).
		Where(`"user" = ?`, user.Username).
		Count(&pendingOrders).Error; err != nil {
		response.ServerError(c)
		return
	}

	var recent []models.Order
	if err := config.DB.Where(`"user" = ?`, user.Username).
		Order("order_time DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		response.ServerError(c)
		return
	}

	var unread int64
	if err := config.DB.Model(&models.Notification{}).
		Where("username = ? AND is_read = ?", user.Username, false).
		Count(&unread).Error; err != nil {
		response.ServerError(c)
		return
	}

	recentOrders := make([]dto.OrderResponse, 0, len(recent))
	for _, order := range recent {
		recentOrders = append(recentOrders, orderResponse(order))
	}

	response.Success(c, gin.H{
		"user":                 userResponse(user),
		"total_orders":         user.TotalOrders,
		"pending_orders":       pendingOrders,
		"unread_notifications": unread,
		"recent_orders":        recentOrders,
	})
}

func reportScheduleResponse(schedule models.ReportSchedule) dto.ReportScheduleResponse {
	return dto.ReportScheduleResponse{
		ID:         schedule.ID,
		Email:      schedule.Email,
		Frequency:  schedule.Frequency,
		IsActive:   schedule.IsActive,
		NextRunAt:  schedule.NextRunAt,
		LastSentAt: schedule.LastSentAt,
		CreatedAt:  schedule.CreatedAt,
	}
}

func GetReportSchedules(c *gin.Context) {
	var schedules []models.ReportSchedule
	if err := config.DB.Order("email").Find(&schedules).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.ReportScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		results = append(results, reportScheduleResponse(schedule))
	}
	response.Success(c, results)
}

// SaveReportSchedule creates or updates the schedule for one recipient.
// Activating a schedule without a next run time seeds it one frequency
// period out.
func SaveReportSchedule(c *gin.Context) {
	var input dto.ReportScheduleRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	frequency := input.Frequency
	if frequency == "" {
		frequency = models.ReportFrequencyMonthly
	}

	schedule := models.ReportSchedule{
		Email:     input.Email,
		Frequency: frequency,
		IsActive:  true,
	}
	if input.IsActive != nil {
		schedule.IsActive = *input.IsActive
	}
	if err := validator.ValidateReportSchedule(&schedule); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.ReportSchedule
	result := config.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		existing.Frequency = schedule.Frequency
		existing.IsActive = schedule.IsActive
		schedule = existing
	}

	if schedule.IsActive && schedule.NextRunAt == nil {
		offset := 30 * 24 * time.Hour
		if schedule.Frequency == models.ReportFrequencyWeekly {
			offset = 7 * 24 * time.Hour
		}
		nextRun := time.Now().Add(offset)
		schedule.NextRunAt = &nextRun
	}
	if !schedule.IsActive {
		schedule.NextRunAt = nil
	}

	if err := config.DB.Save(&schedule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, reportScheduleResponse(schedule))
}

// DispatchReportsNow runs the scheduled report dispatcher on demand.
func DispatchReportsNow(c *gin.Context) {
	log := logger.NewDefaultLogger(logger.InfoLevel)
	sent, failed := reporting.DispatchDueReports(config.DB, services.Mail, time.Now(), log)
	response.Success(c, gin.H{"sent": sent, "failed": failed})
}
