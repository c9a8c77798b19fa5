package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/errors"
	"github.com/Jahid-Hassan-Noor/food-now/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the go-playground tag validation on any dto.
func ValidateStruct(value interface{}) error {
	if err := validate.Struct(value); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid request payload", err)
	}
	return nil
}

// ValidateUser checks a user account before it is written.
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}
	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email address is not valid", nil)
	}
	if user.Username == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Username is required", nil)
	}
	if !isValidUsername(user.Username) {
		return errors.NewAppError(errors.ErrCodeValidation, "Username may only contain letters, digits, dots, underscores and hyphens", nil)
	}
	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}
	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}
	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	if user.Role < 0 || user.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}
	return nil
}

// ValidateFood checks a food item before create or update.
func ValidateFood(food *models.Food) error {
	if strings.TrimSpace(food.FoodName) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Food name is required", nil)
	}
	if food.FoodPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Food price cannot be negative", nil)
	}
	return nil
}

// ValidateCampaign checks campaign timing and stock.
func ValidateCampaign(campaign *models.Campaign) error {
	if strings.TrimSpace(campaign.Title) == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Campaign title is required", nil)
	}
	if campaign.StartTime == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Campaign start time is required", nil)
	}
	if campaign.EndTime != nil && campaign.EndTime.Before(*campaign.StartTime) {
		return errors.NewAppError(errors.ErrCodeValidation, "Campaign end time must be after the start time", nil)
	}
	if campaign.DeliveryTime != nil && campaign.DeliveryTime.Before(*campaign.StartTime) {
		return errors.NewAppError(errors.ErrCodeValidation, "Delivery time must be after the start time", nil)
	}
	if campaign.QuantityAvailable < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Quantity available cannot be negative", nil)
	}
	if len(campaign.FoodItems) > 0 {
		if _, err := campaign.FoodQuantities(); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Food items must be a JSON object of food id to quantity", err)
		}
	}
	return nil
}

// ValidateOrder checks an order before placement.
func ValidateOrder(order *models.Order) error {
	if order.User == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ordering user is required", nil)
	}
	if order.CampaignID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Campaign is required", nil)
	}
	if order.Quantity < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Order quantity must be at least 1", nil)
	}
	if order.FoodPrice < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Order price cannot be negative", nil)
	}
	return nil
}

// ValidateTransaction checks a chef top-up request.
func ValidateTransaction(transaction *models.PendingTransaction) error {
	if transaction.Chef == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Chef is required", nil)
	}
	if transaction.Amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must be positive", nil)
	}
	return nil
}

// ValidateReportSchedule checks a scheduled report subscription.
func ValidateReportSchedule(schedule *models.ReportSchedule) error {
	if err := ValidateEmail(schedule.Email); err != nil {
		return err
	}
	switch schedule.Frequency {
	case models.ReportFrequencyWeekly, models.ReportFrequencyMonthly:
	default:
		return errors.NewAppError(errors.ErrCodeValidation, "Frequency must be weekly or monthly", nil)
	}
	return nil
}

// ValidateEmail checks a bare email address.
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email address is not valid", nil)
	}
	return nil
}

// ValidatePhone checks a bare phone number.
func ValidatePhone(phone string) error {
	if !isValidPhone(phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}
	return nil
}

// ValidatePassword checks password strength for resets.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must be at least 6 characters", nil)
	}
	return nil
}

// ValidateDateRange checks a custom report window in YYYY-MM-DD form.
func ValidateDateRange(startRaw, endRaw string) error {
	start, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Start date must be YYYY-MM-DD", err)
	}
	end, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "End date must be YYYY-MM-DD", err)
	}
	if end.Before(start) {
		return errors.NewAppError(errors.ErrCodeValidation, "End date must not be before the start date", nil)
	}
	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{8,15}$`)
	return phoneRegex.MatchString(phone)
}

func isValidUsername(username string) bool {
	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9._-]{3,30}$`)
	return usernameRegex.MatchString(username)
}
