package reporting

import (
	"strings"
	"testing"
)

func samplePayload() *DashboardPayload {
	return &DashboardPayload{
		Range: RangeSection{
			Key:       "custom",
			Label:     "Custom Range",
			StartDate: "2025-06-04",
			EndDate:   "2025-06-05",
		},
		Summary: Summary{
			TotalUsers:         10,
			TotalChefs:         3,
			CampaignsInRange:   2,
			RechargeInRange:    150.5,
			OrdersInRange:      4,
			CampaignsThisMonth: 2,
			RechargeThisMonth:  150.5,
			OrdersToday:        4,
		},
		Daily: DailyTrends{
			Labels:          []string{"2025-06-04", "2025-06-05"},
			CampaignsPerDay: []int{1, 1},
			RechargePerDay:  []float64{100.5, 50},
			OrdersPerDay:    []int{2, 2},
		},
		Yearly: YearlyRevenue{
			Year:            2025,
			Labels:          append([]string(nil), monthLabels...),
			RevenuePerMonth: []float64{0, 0, 0, 0, 0, 150.5, 0, 0, 0, 0, 0, 0},
		},
		Top: TopPerformers{
			ChefsByRevenue:    []ChefRevenue{{Chef: "alice", Revenue: 150.5}},
			CampaignsByOrders: []CampaignOrders{{CampaignID: "1", Title: "Friday Drop", Chef: "alice", TotalOrders: 4}},
			FoodsByQuantity:   []FoodQuantity{{FoodID: "1", Name: "Nasi Lemak", QuantitySold: 3}},
		},
	}
}

func TestBuildDashboardCSVSections(t *testing.T) {
	content := string(BuildDashboardCSV(samplePayload()))
	lines := strings.Split(content, "\r\n")

	if len(lines) != 45 {
		t.Fatalf("line count = %d, want 45 (incl. trailing empty)", len(lines))
	}
	if lines[len(lines)-1] != "" {
		t.Errorf("expected trailing CRLF, last element = %q", lines[len(lines)-1])
	}

	tests := []struct {
		idx  int
		want string
	}{
		{0, "Admin Dashboard Report"},
		{1, "Range Label,Custom Range"},
		{2, "Start Date,2025-06-04"},
		{3, "End Date,2025-06-05"},
		{4, ""},
		{5, "Summary"},
		{6, "Metric,Value"},
		{7, "Total Users,10"},
		{10, "Recharge/Revenue (Range),150.5"},
		{11, "Orders (Range),4"},
		{13, "Daily Trends"},
		{14, "Date,Campaigns,Recharge,Orders"},
		{15, "2025-06-04,1,100.5,2"},
		{16, "2025-06-05,1,50.0,2"},
		{18, "Monthly Revenue (2025)"},
		{19, "Month,Revenue"},
		{20, "Jan,0.0"},
		{25, "Jun,150.5"},
		{33, "Top Chefs By Revenue"},
		{35, "alice,150.5"},
		{37, "Top Campaigns By Orders"},
		{39, "Friday Drop,alice,4"},
		{41, "Top Foods By Quantity Sold"},
		{43, "Nasi Lemak,3"},
	}
	for _, tt := range tests {
		if lines[tt.idx] != tt.want {
			t.Errorf("line %d = %q, want %q", tt.idx, lines[tt.idx], tt.want)
		}
	}
}

func TestBuildDashboardCSVEmptyTopSections(t *testing.T) {
	payload := samplePayload()
	payload.Top = TopPerformers{
		ChefsByRevenue:    []ChefRevenue{},
		CampaignsByOrders: []CampaignOrders{},
		FoodsByQuantity:   []FoodQuantity{},
	}

	content := string(BuildDashboardCSV(payload))
	if !strings.Contains(content, "Top Chefs By Revenue\r\nChef,Revenue\r\n\r\n") {
		t.Error("empty top-chefs section should keep its headers")
	}
	if !strings.HasSuffix(content, "Top Foods By Quantity Sold\r\nFood,Quantity Sold\r\n") {
		t.Errorf("unexpected document tail: %q", content[len(content)-60:])
	}
}
