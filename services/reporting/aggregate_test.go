package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Chef{},
		&models.Food{},
		&models.Campaign{},
		&models.Order{},
		&models.PendingTransaction{},
		&models.TransactionHistory{},
		&models.ReportSchedule{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func TestBuildDashboardPayloadZeroData(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := service.BuildDashboardPayload(info)
	if err != nil {
		t.Fatalf("BuildDashboardPayload: %v", err)
	}

	if payload.Summary.TotalUsers != 0 || payload.Summary.RechargeInRange != 0 {
		t.Errorf("summary not zeroed: %+v", payload.Summary)
	}
	if len(payload.Daily.Labels) != 7 ||
		len(payload.Daily.CampaignsPerDay) != 7 ||
		len(payload.Daily.RechargePerDay) != 7 ||
		len(payload.Daily.OrdersPerDay) != 7 {
		t.Errorf("daily series lengths should all be 7: %+v", payload.Daily)
	}
	for idx := range payload.Daily.Labels {
		if payload.Daily.CampaignsPerDay[idx] != 0 ||
			payload.Daily.RechargePerDay[idx] != 0 ||
			payload.Daily.OrdersPerDay[idx] != 0 {
			t.Errorf("day %d not zero-filled", idx)
		}
	}
	if len(payload.Yearly.RevenuePerMonth) != 12 || payload.Yearly.Year != 2025 {
		t.Errorf("yearly block = %+v", payload.Yearly)
	}
	if payload.Top.ChefsByRevenue == nil || payload.Top.CampaignsByOrders == nil || payload.Top.FoodsByQuantity == nil {
		t.Error("top lists must be empty, not nil")
	}
	if len(payload.Top.ChefsByRevenue) != 0 {
		t.Errorf("top chefs = %v", payload.Top.ChefsByRevenue)
	}
}

func TestBuildDashboardPayloadSingleOrderWeek(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	mustCreate(t, db, &models.User{Username: "sam", Email: "sam@campus.edu", Role: constants.RoleUser})
	mustCreate(t, db, &models.Chef{ChefUsername: "alice"})
	mustCreate(t, db, &models.Food{FoodName: "Nasi Lemak", Chef: "alice", FoodPrice: 8.5})

	campaignStart := time.Date(2025, 6, 5, 11, 0, 0, 0, time.Local)
	mustCreate(t, db, &models.Campaign{
		Chef:        "alice",
		Title:       "Friday Drop",
		Status:      constants.CampaignStatusRunning,
		TotalOrders: 3,
		StartTime:   timePtr(campaignStart),
	})

	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  2,
		FoodItems: `["1"]`,
		FoodPrice: 17.0,
		OrderTime: time.Date(2025, 6, 6, 13, 0, 0, 0, time.Local),
	})

	// Pending and completed transactions both count toward revenue;
	// chef names are trimmed before ranking.
	mustCreate(t, db, &models.PendingTransaction{
		Chef:            " alice ",
		Amount:          40.25,
		TransactionTime: time.Date(2025, 6, 6, 9, 0, 0, 0, time.Local),
	})
	mustCreate(t, db, &models.TransactionHistory{
		Chef:            "alice",
		Amount:          9.75,
		Status:          constants.TransactionStatusApproved,
		TransactionTime: time.Date(2025, 6, 7, 9, 0, 0, 0, time.Local),
	})

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := service.BuildDashboardPayload(info)
	if err != nil {
		t.Fatalf("BuildDashboardPayload: %v", err)
	}

	if payload.Summary.TotalUsers != 1 || payload.Summary.TotalChefs != 1 {
		t.Errorf("counts = %+v", payload.Summary)
	}
	if payload.Summary.CampaignsInRange != 1 || payload.Summary.OrdersInRange != 1 {
		t.Errorf("range counts = %+v", payload.Summary)
	}
	if payload.Summary.RechargeInRange != 50.0 {
		t.Errorf("recharge = %v, want 50.0", payload.Summary.RechargeInRange)
	}
	if payload.Summary.RechargeThisMonth != payload.Summary.RechargeInRange {
		t.Error("backward-compatible alias out of sync")
	}

	// Window is June 4-10; campaign on the 5th (idx 1), order on the
	// 6th (idx 2), recharge on the 6th and 7th.
	if payload.Daily.CampaignsPerDay[1] != 1 || payload.Daily.OrdersPerDay[2] != 1 {
		t.Errorf("daily placement wrong: %+v", payload.Daily)
	}
	if payload.Daily.RechargePerDay[2] != 40.25 || payload.Daily.RechargePerDay[3] != 9.75 {
		t.Errorf("recharge series = %v", payload.Daily.RechargePerDay)
	}

	if len(payload.Top.ChefsByRevenue) != 1 ||
		payload.Top.ChefsByRevenue[0].Chef != "alice" ||
		payload.Top.ChefsByRevenue[0].Revenue != 50.0 {
		t.Errorf("top chefs = %+v", payload.Top.ChefsByRevenue)
	}
	if len(payload.Top.CampaignsByOrders) != 1 || payload.Top.CampaignsByOrders[0].Title != "Friday Drop" {
		t.Errorf("top campaigns = %+v", payload.Top.CampaignsByOrders)
	}
	if len(payload.Top.FoodsByQuantity) != 1 {
		t.Fatalf("top foods = %+v", payload.Top.FoodsByQuantity)
	}
	if payload.Top.FoodsByQuantity[0].Name != "Nasi Lemak" || payload.Top.FoodsByQuantity[0].QuantitySold != 2 {
		t.Errorf("top food = %+v", payload.Top.FoodsByQuantity[0])
	}

	if payload.Yearly.RevenuePerMonth[5] != 50.0 {
		t.Errorf("june revenue = %v", payload.Yearly.RevenuePerMonth[5])
	}
}

func TestTopFoodsCreditsEveryReferencedID(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	mustCreate(t, db, &models.Food{FoodName: "Laksa", Chef: "alice"})
	mustCreate(t, db, &models.Food{FoodName: "Satay", Chef: "alice"})

	// Zero quantity still counts as one; both referenced foods get the
	// full amount.
	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  0,
		FoodItems: `["1","2"]`,
		OrderTime: time.Date(2025, 6, 9, 13, 0, 0, 0, time.Local),
	})
	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  3,
		FoodItems: "2",
		OrderTime: time.Date(2025, 6, 9, 14, 0, 0, 0, time.Local),
	})

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := service.BuildDashboardPayload(info)
	if err != nil {
		t.Fatal(err)
	}

	foods := payload.Top.FoodsByQuantity
	if len(foods) != 2 {
		t.Fatalf("top foods = %+v", foods)
	}
	if foods[0].FoodID != "2" || foods[0].QuantitySold != 4 {
		t.Errorf("first = %+v, want food 2 with 4", foods[0])
	}
	if foods[1].FoodID != "1" || foods[1].QuantitySold != 1 {
		t.Errorf("second = %+v, want food 1 with 1", foods[1])
	}
}

func TestTopCampaignsSystemWideFallback(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	// The only campaign started before the window.
	mustCreate(t, db, &models.Campaign{
		Chef:        "alice",
		Title:       "Old Favourite",
		TotalOrders: 12,
		StartTime:   timePtr(time.Date(2025, 1, 15, 11, 0, 0, 0, time.Local)),
	})

	info, err := ResolveRange("today", "", "")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := service.BuildDashboardPayload(info)
	if err != nil {
		t.Fatal(err)
	}

	if payload.Summary.CampaignsInRange != 0 {
		t.Errorf("campaigns in range = %d", payload.Summary.CampaignsInRange)
	}
	if len(payload.Top.CampaignsByOrders) != 1 || payload.Top.CampaignsByOrders[0].Title != "Old Favourite" {
		t.Errorf("fallback campaigns = %+v", payload.Top.CampaignsByOrders)
	}
}

func TestTotalUsersFallsBackToAllAccounts(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	// Only non-user roles exist.
	mustCreate(t, db, &models.User{Username: "boss", Email: "boss@campus.edu", Role: constants.RoleAdmin})
	mustCreate(t, db, &models.User{Username: "cook", Email: "cook@campus.edu", Role: constants.RoleChef})

	info, err := ResolveRange("today", "", "")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := service.BuildDashboardPayload(info)
	if err != nil {
		t.Fatal(err)
	}
	if payload.Summary.TotalUsers != 2 {
		t.Errorf("total users = %d, want fallback count 2", payload.Summary.TotalUsers)
	}
}
