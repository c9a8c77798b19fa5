package controllers

import (
	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"

	"github.com/gin-gonic/gin"
)

func userResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		Status:      user.Status,
		IsVerified:  user.IsVerified,
		Avatar:      user.Avatar,
		CampusID:    user.CampusID,
		RoomNumber:  user.RoomNumber,
		TotalOrders: user.TotalOrders,
		LastOrderAt: user.LastOrderAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func GetProfile(c *gin.Context) {
	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}
	response.Success(c, userResponse(user))
}

func UpdateProfile(c *gin.Context) {
	var input dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	if input.CampusID != "" {
		user.CampusID = input.CampusID
	}
	if input.RoomNumber != "" {
		user.RoomNumber = input.RoomNumber
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, userResponse(user))
}

// ListUsers is the admin account listing with optional role, status and
// search filters.
func ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page, limit := pageWindow(query.Page, query.Limit)

	tx := config.DB.Model(&models.User{})
	if query.Role != nil {
		tx = tx.Where("role = ?", *query.Role)
	}
	if query.Status != nil {
		tx = tx.Where("status = ?", *query.Status)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("username LIKE ? OR email LIKE ? OR name LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := tx.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		results = append(results, userResponse(user))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// SetUserStatus bans or unbans an account.
func SetUserStatus(c *gin.Context) {
	var input dto.UserStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Status != constants.UserStatusActive && input.Status != constants.UserStatusBanned {
		response.BadRequest(c, "Status must be active or banned")
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.Role == constants.RoleAdmin {
		response.BadRequest(c, "Admin accounts cannot be banned")
		return
	}

	user.Status = input.Status
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, userResponse(user))
}
