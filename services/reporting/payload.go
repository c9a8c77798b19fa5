package reporting

import (
	"math"
	"strconv"
	"strings"
)

// RangeSection echoes the resolved window back to the client.
type RangeSection struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Summary carries range-wide totals. The *ThisMonth/*Today fields are
// backward-compatible aliases kept for older dashboard clients.
type Summary struct {
	TotalUsers       int64   `json:"total_users"`
	TotalChefs       int64   `json:"total_chefs"`
	CampaignsInRange int64   `json:"campaigns_in_range"`
	RechargeInRange  float64 `json:"recharge_in_range"`
	OrdersInRange    int64   `json:"orders_in_range"`

	CampaignsThisMonth int64   `json:"campaigns_this_month"`
	RechargeThisMonth  float64 `json:"recharge_this_month"`
	OrdersToday        int64   `json:"orders_today"`
}

// DailyTrends holds the zero-filled per-day series. All slices share
// the length of the range's day span.
type DailyTrends struct {
	Labels          []string  `json:"labels"`
	CampaignsPerDay []int     `json:"campaigns_per_day"`
	RechargePerDay  []float64 `json:"recharge_per_day"`
	OrdersPerDay    []int     `json:"orders_per_day"`
}

// YearlyRevenue is the twelve-month revenue series for the year of the
// range's end date.
type YearlyRevenue struct {
	Year            int       `json:"year"`
	Labels          []string  `json:"labels"`
	RevenuePerMonth []float64 `json:"revenue_per_month"`
}

type ChefRevenue struct {
	Chef    string  `json:"chef"`
	Revenue float64 `json:"revenue"`
}

type CampaignOrders struct {
	CampaignID  string `json:"campaign_id"`
	Title       string `json:"title"`
	Chef        string `json:"chef"`
	TotalOrders int    `json:"total_orders"`
}

type FoodQuantity struct {
	FoodID       string `json:"food_id"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
}

type TopPerformers struct {
	ChefsByRevenue    []ChefRevenue    `json:"chefs_by_revenue"`
	CampaignsByOrders []CampaignOrders `json:"campaigns_by_orders"`
	FoodsByQuantity   []FoodQuantity   `json:"foods_by_quantity"`
}

// DashboardPayload is the complete admin dashboard report. The
// last_30_days key is historical; it carries whatever window was
// resolved, not necessarily thirty days.
type DashboardPayload struct {
	Range   RangeSection  `json:"range"`
	Summary Summary       `json:"summary"`
	Daily   DailyTrends   `json:"last_30_days"`
	Yearly  YearlyRevenue `json:"yearly_revenue"`
	Top     TopPerformers `json:"top_performers"`
}

var monthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// round2 rounds money to two decimals. Only payload boundaries round;
// intermediate accumulation stays full precision.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// formatAmount renders a monetary value keeping a trailing ".0" on
// whole amounts, matching what report consumers already parse.
func formatAmount(value float64) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
