package controllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openControllerDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Chef{},
		&models.Food{},
		&models.ReportSchedule{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedChefs(t *testing.T, db *gorm.DB, usernames ...string) {
	t.Helper()
	for _, username := range usernames {
		if err := db.Create(&models.Chef{ChefUsername: username}).Error; err != nil {
			t.Fatalf("seed chef %q: %v", username, err)
		}
	}
}

func TestResolveDashboardChefOwnProfileFirst(t *testing.T) {
	db := openControllerDB(t)
	seedChefs(t, db, "alice", "harun")

	chef, fallback, err := resolveDashboardChef(db, constants.RoleAdmin, "harun", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if chef.ChefUsername != "harun" {
		t.Errorf("chef = %q, want the admin's own profile", chef.ChefUsername)
	}
	if fallback {
		t.Error("fallback flagged for the admin's own profile")
	}
}

func TestResolveDashboardChefFallbackAlphabetical(t *testing.T) {
	db := openControllerDB(t)
	seedChefs(t, db, "zoe", "bob")

	chef, fallback, err := resolveDashboardChef(db, constants.RoleAdmin, "admin", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if chef.ChefUsername != "bob" {
		t.Errorf("fallback chef = %q, want the alphabetically first", chef.ChefUsername)
	}
	if !fallback {
		t.Error("fallback not flagged")
	}
}

func TestResolveDashboardChefRequestedMissing(t *testing.T) {
	db := openControllerDB(t)
	seedChefs(t, db, "alice")

	_, _, err := resolveDashboardChef(db, constants.RoleAdmin, "admin", "ghost")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want record-not-found for a named missing chef", err)
	}
}

func TestResolveDashboardChefCaseInsensitiveRequest(t *testing.T) {
	db := openControllerDB(t)
	seedChefs(t, db, "Alice")

	chef, fallback, err := resolveDashboardChef(db, constants.RoleAdmin, "admin", "alice")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if chef.ChefUsername != "Alice" {
		t.Errorf("chef = %q, want case-insensitive match", chef.ChefUsername)
	}
	if fallback {
		t.Error("fallback flagged for an explicitly requested chef")
	}
}

func TestInactiveReportSchedulePersists(t *testing.T) {
	db := openControllerDB(t)

	schedule := models.ReportSchedule{
		Email:     "paused@example.com",
		Frequency: models.ReportFrequencyWeekly,
		IsActive:  false,
	}
	if err := db.Create(&schedule).Error; err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	var loaded models.ReportSchedule
	if err := db.Where("email = ?", schedule.Email).First(&loaded).Error; err != nil {
		t.Fatalf("reload schedule: %v", err)
	}
	if loaded.IsActive {
		t.Error("schedule created as inactive was persisted active")
	}
}

func TestUnlistedFoodPersists(t *testing.T) {
	db := openControllerDB(t)

	food := models.Food{FoodName: "Nasi Lemak", Chef: "alice", IsListed: false}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("create food: %v", err)
	}

	var loaded models.Food
	if err := db.First(&loaded, food.ID).Error; err != nil {
		t.Fatalf("reload food: %v", err)
	}
	if loaded.IsListed {
		t.Error("food created as unlisted was persisted listed")
	}
}
