package controllers

import (
	"errors"
	"strings"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/services/reporting"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// findChefByUsername tries an exact match first, then a
// case-insensitive one.
func findChefByUsername(db *gorm.DB, username string) (*models.Chef, error) {
	var chef models.Chef
	err := db.Where("chef_username = ?", username).First(&chef).Error
	if err == nil {
		return &chef, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = db.Where("LOWER(chef_username) = LOWER(?)", username).First(&chef).Error
	if err != nil {
		return nil, err
	}
	return &chef, nil
}

// resolveDashboardChef picks the chef profile a dashboard request is
// about. Chefs always resolve to their own profile. Admins may name one
// with requested; otherwise the admin's own username is tried first and
// the alphabetically first chef profile serves as the fallback.
func resolveDashboardChef(db *gorm.DB, role int, username, requested string) (*models.Chef, bool, error) {
	if role == constants.RoleChef {
		chef, err := findChefByUsername(db, username)
		return chef, false, err
	}

	if requested != "" {
		chef, err := findChefByUsername(db, requested)
		return chef, false, err
	}

	chef, err := findChefByUsername(db, username)
	if err == nil {
		return chef, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	var first models.Chef
	if err := db.Order("chef_username").First(&first).Error; err != nil {
		return nil, false, err
	}
	return &first, true, nil
}

// GetChefDashboard serves the chef-scoped dashboard. Chefs always see
// their own; admins can pick a chef with ?chef= and otherwise fall back
// to their own profile or the first chef, with a warning.
func GetChefDashboard(c *gin.Context) {
	var query dto.ChefDashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	info, ok := resolveDashboardRange(c, query.DashboardQuery)
	if !ok {
		return
	}

	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	role := currentRole(c)
	meta := reporting.ChefMeta{RequestedByRole: roleName(role)}

	chef, fallbackUsed, err := resolveDashboardChef(config.DB, role, user.Username, query.Chef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if role != constants.RoleChef && query.Chef == "" {
				payload := reporting.EmptyChefDashboardPayload(info, meta.RequestedByRole,
					"No chef profiles exist yet.")
				response.Success(c, payload)
				return
			}
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	chefUsername := strings.TrimSpace(chef.ChefUsername)
	meta.Username = chefUsername
	meta.IsSelf = strings.EqualFold(chefUsername, strings.TrimSpace(user.Username))
	meta.FallbackUsed = fallbackUsed ||
		(role != constants.RoleChef && !meta.IsSelf && query.Chef == "")

	payload, err := reporting.NewService(config.DB).BuildChefDashboardPayload(info, chef, meta)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, payload)
}
