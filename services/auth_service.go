package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"
	"github.com/Jahid-Hassan-Noor/food-now/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func generateVerificationCode() (string, error) {
	code := ""

	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}

	return code, nil
}

func sendVerificationEmail(email string, code string) error {
	subject := "Your one-time verification code"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Verification code</title>
		</head>
		<body>
			<p>Hello %s,</p>
			<p>We received a request for a one-time code for your account.</p>
			<p>Your one-time code is: <strong>%s</strong></p>
			<p>If you did not request this code you can safely ignore this email. Someone else may have entered your address by mistake.</p>
			<p>Thanks,<br>The Food Now team</p>
		</body>
		</html>
	`, email, code)

	return Mail.Send(email, subject, body, nil, "", "")
}

func sendWelcomeEmail(email string, username string, code string) error {
	subject := "Welcome to Food Now"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Account created</title>
	</head>
	<body>
		<p>Hello %s,</p>
		<p>Your Food Now account was created successfully.</p>
		<p>Your verification code is: <strong>%s</strong></p>
		<p>If you did not create this account you can safely ignore this email.</p>
		<p>Thanks,<br>The Food Now team</p>
	</body>
	</html>`, username, code)

	return Mail.Send(email, subject, body, nil, "", "")
}

// SendNews delivers an announcement email, used when admins broadcast.
func SendNews(email string, title string, mess string) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>%s</title>
		</head>
		<body>
			<p>Hello %s,</p>
			<p>%s</p>
			<p>Thanks,<br>The Food Now team</p>
		</body>
		</html>
	`, title, email, mess)

	return Mail.Send(email, title, body, nil, "", "")
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func GetUserByUsername(username string) (models.User, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with username %s", username)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))
var refreshSecretKey = []byte(config.GetEnv("SECRET_KEY_REFRESH_TOKEN"))

func GenerateToken(userInfo UserInfo, expiryMinutes int, isAccessToken bool) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	var secretKeyToUse []byte
	if isAccessToken {
		secretKeyToUse = secretKey
	} else {
		secretKeyToUse = refreshSecretKey
	}

	return token.SignedString(secretKeyToUse)
}

func SetTokenCookies(c *gin.Context, accessToken string) {
	c.SetCookie(
		"access_token",
		accessToken,
		3*24*60*60,
		"/",
		"",
		true,
		false,
	)
}

func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.Username == "" {
		return models.User{}, errors.New("email, password and username are required")
	}

	existingEmail, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", existingEmail.Email)
	}

	existingUsername, err := GetUserByUsername(input.Username)
	if err == nil {
		return models.User{}, fmt.Errorf("username %s is already in use", existingUsername.Username)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:      input.Username,
		Email:         input.Email,
		Password:      hashedPassword,
		PhoneNumber:   input.PhoneNumber,
		IsVerified:    false,
		Code:          code,
		CodeCreatedAt: time.Now(),
		Role:          input.Role,
		Name:          input.Name,
		CampusID:      input.CampusID,
		RoomNumber:    input.RoomNumber,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	if err := sendWelcomeEmail(user.Email, user.Username, code); err != nil {
		return user, err
	}

	return user, nil
}

// VerifyGoogleIDToken validates a Google sign-in credential and returns
// the verified email and display name.
func VerifyGoogleIDToken(ctx context.Context, credential string) (string, string, error) {
	payload, err := idtoken.Validate(ctx, credential, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		return "", "", fmt.Errorf("invalid Google credential: %v", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", "", errors.New("Google credential carries no email")
	}

	return email, name, nil
}

// CreateGoogleUser provisions a verified account for a Google sign-in
// that has no local user yet.
func CreateGoogleUser(email string, name string) (models.User, error) {
	password, err := generateVerificationCode()
	if err != nil {
		return models.User{}, err
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:   email,
		Email:      email,
		Name:       name,
		Password:   hashedPassword,
		IsVerified: true,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

const verificationCodeTTL = 15 * time.Minute

// VerifyEmailCode checks the stored code and marks the user verified.
func VerifyEmailCode(userID uint, code string) error {
	var user models.User
	result := config.DB.First(&user, userID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("no user found with id %d", userID)
	}
	if result.Error != nil {
		return result.Error
	}

	if user.Code == "" || user.Code != code {
		return errors.New("verification code does not match")
	}
	if time.Since(user.CodeCreatedAt) > verificationCodeTTL {
		return errors.New("verification code has expired")
	}

	user.IsVerified = true
	user.Code = ""
	return config.DB.Save(&user).Error
}

func RegenerateVerificationCode(userID uint) error {
	var user models.User
	result := config.DB.First(&user, userID)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("no user found with id %d", userID)
	}

	if result.Error != nil {
		return result.Error
	}

	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("cannot generate a new verification code: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("cannot store the verification code: %v", err)
	}
	if err := sendVerificationEmail(user.Email, newCode); err != nil {
		return fmt.Errorf("cannot send the verification email: %v", err)
	}

	return nil
}

// ResetPass emails a reset code to the user.
func ResetPass(user models.User) error {
	newCode, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("cannot generate a new verification code: %v", err)
	}

	user.Code = newCode
	user.CodeCreatedAt = time.Now()

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("cannot store the verification code: %v", err)
	}

	if err := sendVerificationEmail(user.Email, newCode); err != nil {
		return fmt.Errorf("cannot send the verification email: %v", err)
	}

	return nil
}

// NewPass replaces the password after a reset code was accepted.
func NewPass(user models.User, newPassword string) error {
	hashedPassword, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("cannot hash the password: %v", err)
	}

	user.Password = hashedPassword
	user.Code = ""

	if err := config.DB.Save(&user).Error; err != nil {
		return fmt.Errorf("cannot update the password: %v", err)
	}

	return nil
}
