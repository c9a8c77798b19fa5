package controllers

import (
	"fmt"
	"strconv"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/models"

	"github.com/gin-gonic/gin"
)

// currentUserID reads the account id stored by AuthMiddleware.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

func currentRole(c *gin.Context) int {
	value, exists := c.Get("userRole")
	if !exists {
		return -1
	}
	role, ok := value.(int)
	if !ok {
		return -1
	}
	return role
}

func roleName(role int) string {
	switch role {
	case constants.RoleAdmin:
		return "admin"
	case constants.RoleChef:
		return "chef"
	default:
		return "user"
	}
}

// loadCurrentUser fetches the authenticated account row.
func loadCurrentUser(c *gin.Context) (models.User, error) {
	userID, ok := currentUserID(c)
	if !ok {
		return models.User{}, fmt.Errorf("no authenticated user on this request")
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// loadCurrentChef resolves the chef profile of the authenticated user.
// Chef profiles are keyed by the account username.
func loadCurrentChef(c *gin.Context) (models.User, models.Chef, error) {
	user, err := loadCurrentUser(c)
	if err != nil {
		return models.User{}, models.Chef{}, err
	}

	var chef models.Chef
	if err := config.DB.Where("chef_username = ?", user.Username).First(&chef).Error; err != nil {
		return user, models.Chef{}, err
	}
	return user, chef, nil
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func pageWindow(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
