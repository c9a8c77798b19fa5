package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/dto"
	"github.com/Jahid-Hassan-Noor/food-now/models"
	"github.com/Jahid-Hassan-Noor/food-now/response"
	"github.com/Jahid-Hassan-Noor/food-now/services"
	"github.com/Jahid-Hassan-Noor/food-now/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const accessTokenMinutes = 60 * 24 * 3

func userLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		Username:     user.Username,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserStatus:   user.Status,
		UserAvatar:   user.Avatar,
		CampusID:     user.CampusID,
		RoomNumber:   user.RoomNumber,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	candidate := models.User{
		Username:    strings.ToLower(strings.TrimSpace(input.Username)),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		CampusID:    input.CampusID,
		RoomNumber:  input.RoomNumber,
	}
	if err := validator.ValidateUser(&candidate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(candidate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, userLoginResponse(user))
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(strings.TrimSpace(input.Identifier))

	var user models.User
	if err := config.DB.Where("email = ? OR username = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid credentials")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Invalid credentials")
		return
	}

	if user.Status == constants.UserStatusBanned {
		response.Forbidden(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, accessTokenMinutes, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SetTokenCookies(c, accessToken)
	response.Success(c, gin.H{
		"user_info":   userLoginResponse(user),
		"accessToken": accessToken,
	})
}

// Logout blacklists the presented token for its remaining lifetime and
// clears the auth cookies.
func Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != "" && token != authHeader {
		if err := services.BlacklistToken(token, time.Duration(accessTokenMinutes)*time.Minute); err != nil {
			response.ServerError(c)
			return
		}
	}

	for _, cookie := range c.Request.Cookies() {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func VerifyCode(c *gin.Context) {
	var input dto.VerifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "No user found with this email")
		return
	}

	if err := services.VerifyEmailCode(user.ID, input.Code); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, nil)
}

func ResendVerificationCode(c *gin.Context) {
	var input dto.ResendVerificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))
	var user models.User
	if err := config.DB.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "User does not exist")
		return
	}

	if err := services.RegenerateVerificationCode(user.ID); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	identifier := strings.ToLower(strings.TrimSpace(input.Identifier))
	var user models.User
	if err := config.DB.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "User does not exist")
		return
	}

	if err := services.ResetPass(user); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// ResetPassword accepts the emailed reset code together with the new
// password.
func ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidatePassword(input.NewPassword); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "User does not exist")
		return
	}

	if err := services.VerifyEmailCode(user.ID, input.Code); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := services.NewPass(user, input.NewPassword); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

func ChangePassword(c *gin.Context) {
	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := loadCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.OldPassword); err != nil {
		response.BadRequest(c, "Current password is incorrect")
		return
	}
	if err := validator.ValidatePassword(input.NewPassword); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := services.NewPass(user, input.NewPassword); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// AuthGoogle signs a user in with a Google ID token, provisioning an
// account on first sight.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	email, name, err := services.VerifyGoogleIDToken(c.Request.Context(), input.Credential)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(email, name)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	if user.Status == constants.UserStatusBanned {
		response.Forbidden(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, accessTokenMinutes, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SetTokenCookies(c, accessToken)
	response.Success(c, gin.H{
		"user_info":   userLoginResponse(user),
		"accessToken": accessToken,
	})
}
