package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/models"
)

func TestBuildChefDashboardProportionalRevenue(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	chef := &models.Chef{
		ChefUsername:        "alice",
		Balance:             120.505,
		CampaignPoints:      7,
		SubscriptionStatus:  constants.SubscriptionStatusActive,
		TotalOrdersReceived: 40,
		TotalCampaigns:      6,
	}
	mustCreate(t, db, chef)

	// Foods 1 and 2 belong to alice; food 3 belongs to someone else.
	mustCreate(t, db, &models.Food{FoodName: "Nasi Lemak", Chef: "alice", FoodPrice: 8.5})
	mustCreate(t, db, &models.Food{FoodName: "Laksa", Chef: "Alice", FoodPrice: 6.0})
	mustCreate(t, db, &models.Food{FoodName: "Satay", Chef: "bob", FoodPrice: 4.0})

	// Order references foods 1 and 3, so alice owns half of it.
	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  2,
		FoodItems: `["1", "3"]`,
		FoodPrice: 10.0,
		OrderTime: time.Date(2025, 6, 6, 13, 0, 0, 0, time.Local),
	})
	// Fully-owned order: both ids match, quantity splits evenly.
	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  4,
		FoodItems: `["1", "2"]`,
		FoodPrice: 14.5,
		OrderTime: time.Date(2025, 6, 7, 13, 0, 0, 0, time.Local),
	})
	// No matching ids, must be ignored entirely.
	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  1,
		FoodItems: `["3"]`,
		FoodPrice: 4.0,
		OrderTime: time.Date(2025, 6, 7, 14, 0, 0, 0, time.Local),
	})

	mustCreate(t, db, &models.Campaign{
		Chef:              "alice",
		Title:             "Weekend Special",
		Status:            constants.CampaignStatusRunning,
		TotalOrders:       2,
		QuantityAvailable: 8,
		StartTime:         timePtr(time.Date(2025, 6, 6, 10, 0, 0, 0, time.Local)),
	})

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	meta := ChefMeta{Username: "alice", RequestedByRole: "chef", IsSelf: true}
	payload, err := service.BuildChefDashboardPayload(info, chef, meta)
	if err != nil {
		t.Fatalf("BuildChefDashboardPayload: %v", err)
	}

	// 10.0 * 1/2 + 14.5 * 2/2 = 19.5 over two counted orders.
	if payload.Summary.OrdersInRange != 2 {
		t.Errorf("orders in range = %d, want 2", payload.Summary.OrdersInRange)
	}
	if payload.Summary.RevenueInRange != 19.5 {
		t.Errorf("revenue in range = %v, want 19.5", payload.Summary.RevenueInRange)
	}
	if payload.Summary.AvgOrderValue != 9.75 {
		t.Errorf("avg order value = %v, want 9.75", payload.Summary.AvgOrderValue)
	}
	if payload.Summary.Balance != 120.51 {
		t.Errorf("balance = %v, want rounded 120.51", payload.Summary.Balance)
	}
	if payload.Summary.CampaignsInRange != 1 || payload.Summary.ActiveCampaigns != 1 {
		t.Errorf("campaign counts = %+v", payload.Summary)
	}

	// Window June 4-10: half-order on the 6th (idx 2), full on the 7th.
	if payload.Trends.RevenuePerDay[2] != 5.0 || payload.Trends.RevenuePerDay[3] != 14.5 {
		t.Errorf("revenue series = %v", payload.Trends.RevenuePerDay)
	}
	if payload.Trends.OrdersPerDay[2] != 1 || payload.Trends.OrdersPerDay[3] != 1 {
		t.Errorf("orders series = %v", payload.Trends.OrdersPerDay)
	}

	// First order: one matched id out of two, quantity 2 -> 2 each.
	// Second order: two matched ids, quantity 4 -> 2 each.
	if len(payload.Top.Foods) != 2 {
		t.Fatalf("top foods = %+v", payload.Top.Foods)
	}
	if payload.Top.Foods[0].FoodID != "1" || payload.Top.Foods[0].QuantitySold != 4 {
		t.Errorf("food 1 = %+v, want quantity 4", payload.Top.Foods[0])
	}
	if payload.Top.Foods[1].FoodID != "2" || payload.Top.Foods[1].QuantitySold != 2 {
		t.Errorf("food 2 = %+v, want quantity 2", payload.Top.Foods[1])
	}

	if len(payload.Top.Campaigns) != 1 || payload.Top.Campaigns[0].Title != "Weekend Special" {
		t.Errorf("top campaigns = %+v", payload.Top.Campaigns)
	}

	if payload.Yearly.RevenuePerMonth[5] != 19.5 {
		t.Errorf("june yearly revenue = %v", payload.Yearly.RevenuePerMonth[5])
	}

	if payload.Metrics.Balance != 120.51 || payload.Metrics.TotalOrdersReceived != 40 {
		t.Errorf("legacy metrics = %+v", payload.Metrics)
	}
	if payload.Status != 200 {
		t.Errorf("status = %d", payload.Status)
	}
	if payload.Warning != "" {
		t.Errorf("unexpected warning %q", payload.Warning)
	}
}

func TestBuildChefDashboardZeroQuantityDistribution(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	chef := &models.Chef{ChefUsername: "alice"}
	mustCreate(t, db, chef)
	mustCreate(t, db, &models.Food{FoodName: "Nasi Lemak", Chef: "alice"})
	mustCreate(t, db, &models.Food{FoodName: "Laksa", Chef: "alice"})

	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  0,
		FoodItems: `["1", "2"]`,
		FoodPrice: 12.0,
		OrderTime: time.Date(2025, 6, 9, 13, 0, 0, 0, time.Local),
	})

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := service.BuildChefDashboardPayload(info, chef, ChefMeta{Username: "alice", RequestedByRole: "chef", IsSelf: true})
	if err != nil {
		t.Fatal(err)
	}

	// Zero quantity falls back to the matched count, one unit each.
	for _, food := range payload.Top.Foods {
		if food.QuantitySold != 1 {
			t.Errorf("food %s quantity = %d, want 1", food.FoodID, food.QuantitySold)
		}
	}
	if payload.Summary.RevenueInRange != 12.0 {
		t.Errorf("revenue = %v, want the full order value", payload.Summary.RevenueInRange)
	}
}

func TestBuildChefDashboardHalfQuantityRoundsToEven(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	chef := &models.Chef{ChefUsername: "alice"}
	mustCreate(t, db, chef)
	mustCreate(t, db, &models.Food{FoodName: "Nasi Lemak", Chef: "alice"})
	mustCreate(t, db, &models.Food{FoodName: "Laksa", Chef: "alice"})

	mustCreate(t, db, &models.Order{
		User:      "sam",
		Quantity:  5,
		FoodItems: `["1", "2"]`,
		FoodPrice: 20.0,
		OrderTime: time.Date(2025, 6, 9, 13, 0, 0, 0, time.Local),
	})

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := service.BuildChefDashboardPayload(info, chef, ChefMeta{Username: "alice", RequestedByRole: "chef", IsSelf: true})
	if err != nil {
		t.Fatal(err)
	}

	// 5 units across two foods is a 2.5 tie per food, which rounds to
	// the even 2, not 3.
	for _, food := range payload.Top.Foods {
		if food.QuantitySold != 2 {
			t.Errorf("food %s quantity = %d, want 2", food.FoodID, food.QuantitySold)
		}
	}
}

func TestBuildChefDashboardFallbackWarning(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	db := openTestDB(t)
	service := NewService(db)

	chef := &models.Chef{ChefUsername: "alice"}
	mustCreate(t, db, chef)

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	meta := ChefMeta{Username: "alice", RequestedByRole: "admin", FallbackUsed: true}
	payload, err := service.BuildChefDashboardPayload(info, chef, meta)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(payload.Warning, "Showing dashboard for chef 'alice'") {
		t.Errorf("warning = %q", payload.Warning)
	}
	if !strings.Contains(payload.Warning, "?chef=<chef_username>") {
		t.Errorf("warning missing usage hint: %q", payload.Warning)
	}
}

func TestEmptyChefDashboardPayload(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local))
	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}

	payload := EmptyChefDashboardPayload(info, "admin", "No chef profiles exist yet.")
	if payload.Summary.SubscriptionStatus != "N/A" {
		t.Errorf("subscription status = %q", payload.Summary.SubscriptionStatus)
	}
	if len(payload.Trends.Labels) != 7 ||
		len(payload.Trends.CampaignsPerDay) != 7 ||
		len(payload.Trends.OrdersPerDay) != 7 ||
		len(payload.Trends.RevenuePerDay) != 7 {
		t.Errorf("trend series not sized to the window: %+v", payload.Trends)
	}
	if payload.Top.Campaigns == nil || payload.Top.Foods == nil {
		t.Error("top sections must be empty slices, not nil")
	}
	if payload.Status != 200 || payload.Warning != "No chef profiles exist yet." {
		t.Errorf("payload = status %d warning %q", payload.Status, payload.Warning)
	}
}
