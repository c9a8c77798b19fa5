package reporting

import (
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/models"
)

// ChefMeta identifies whose dashboard is shown and how the chef was
// resolved.
type ChefMeta struct {
	Username        string `json:"username"`
	RequestedByRole string `json:"requested_by_role"`
	IsSelf          bool   `json:"is_self"`
	FallbackUsed    bool   `json:"fallback_used"`
}

type ChefSummary struct {
	Balance                float64 `json:"balance"`
	CampaignPoints         int     `json:"campaign_points"`
	SubscriptionStatus     string  `json:"subscription_status"`
	ActiveCampaigns        int64   `json:"active_campaigns"`
	CampaignsInRange       int64   `json:"campaigns_in_range"`
	OrdersInRange          int     `json:"orders_in_range"`
	RevenueInRange         float64 `json:"revenue_in_range"`
	AvgOrderValue          float64 `json:"avg_order_value"`
	LifetimeTotalOrders    int     `json:"lifetime_total_orders"`
	LifetimeTotalCampaigns int     `json:"lifetime_total_campaigns"`
}

type ChefTrends struct {
	Labels          []string  `json:"labels"`
	CampaignsPerDay []int     `json:"campaigns_per_day"`
	OrdersPerDay    []int     `json:"orders_per_day"`
	RevenuePerDay   []float64 `json:"revenue_per_day"`
}

type ChefCampaign struct {
	CampaignID        string `json:"campaign_id"`
	Title             string `json:"title"`
	Status            string `json:"status"`
	TotalOrders       int    `json:"total_orders"`
	QuantityAvailable int    `json:"quantity_available"`
}

type ChefTopPerformers struct {
	Campaigns []ChefCampaign `json:"campaigns"`
	Foods     []FoodQuantity `json:"foods"`
}

// ChefLegacyMetrics mirrors the old metrics block some clients still
// read; the misspelled json key is part of the contract.
type ChefLegacyMetrics struct {
	Balance             float64 `json:"balance"`
	TotalOrdersReceived int     `json:"total_orders_received"`
	TotalCampaigns      int     `json:"total_campaigns"`
	CampaignPoints      int     `json:"campaign_points"`
}

type ChefDashboardPayload struct {
	Range   RangeSection      `json:"range"`
	Chef    ChefMeta          `json:"chef"`
	Summary ChefSummary       `json:"summary"`
	Trends  ChefTrends        `json:"trends"`
	Yearly  YearlyRevenue     `json:"yearly_revenue"`
	Top     ChefTopPerformers `json:"top_performers"`
	Metrics ChefLegacyMetrics `json:"metrices"`
	Status  int               `json:"status"`
	Warning string            `json:"warning,omitempty"`
}

// EmptyChefDashboardPayload is returned to admins when no chef profile
// exists at all.
func EmptyChefDashboardPayload(info *RangeInfo, role string, warning string) *ChefDashboardPayload {
	zerosInt := make([]int, info.DaySpan)
	zerosFloat := make([]float64, info.DaySpan)
	return &ChefDashboardPayload{
		Range: RangeSection{
			Key:       info.Key,
			Label:     info.Label,
			StartDate: info.StartDate.Format(dateLayout),
			EndDate:   info.EndDate.Format(dateLayout),
		},
		Chef: ChefMeta{RequestedByRole: role},
		Summary: ChefSummary{
			SubscriptionStatus: "N/A",
		},
		Trends: ChefTrends{
			Labels:          info.DateLabels(),
			CampaignsPerDay: zerosInt,
			OrdersPerDay:    append([]int(nil), zerosInt...),
			RevenuePerDay:   zerosFloat,
		},
		Yearly: YearlyRevenue{
			Year:            info.EndDate.Year(),
			Labels:          append([]string(nil), monthLabels...),
			RevenuePerMonth: make([]float64, 12),
		},
		Top: ChefTopPerformers{
			Campaigns: []ChefCampaign{},
			Foods:     []FoodQuantity{},
		},
		Status:  http.StatusOK,
		Warning: warning,
	}
}

// BuildChefDashboardPayload aggregates a single chef's dashboard.
// Revenue is attributed proportionally: an order contributes its
// food_price scaled by matched/total food ids, and quantities are
// distributed evenly across the matched foods.
func (s *Service) BuildChefDashboardPayload(info *RangeInfo, chef *models.Chef, meta ChefMeta) (*ChefDashboardPayload, error) {
	start, end := rangeBounds(info)
	dateLabels := info.DateLabels()
	now := nowFunc()
	chefUsername := meta.Username

	var campaignsInRange int64
	if err := s.db.Model(&models.Campaign{}).
		Where("LOWER(chef) = LOWER(?)", chefUsername).
		Where("start_time >= ? AND start_time < ?", start, end).
		Count(&campaignsInRange).Error; err != nil {
		return nil, fmt.Errorf("count chef campaigns: %w", err)
	}

	var activeCampaigns int64
	if err := s.db.Model(&models.Campaign{}).
		Where("LOWER(chef) = LOWER(?)", chefUsername).
		Where("status = ?", "running").
		Where("start_time <= ?", now).
		Where("end_time IS NULL OR end_time >= ?", now).
		Count(&activeCampaigns).Error; err != nil {
		return nil, fmt.Errorf("count active campaigns: %w", err)
	}

	var rangeCampaigns []models.Campaign
	if err := s.db.
		Where("LOWER(chef) = LOWER(?)", chefUsername).
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("total_orders DESC, start_time DESC").
		Find(&rangeCampaigns).Error; err != nil {
		return nil, fmt.Errorf("load chef campaigns: %w", err)
	}

	campaignsByDay := map[string]int{}
	for _, campaign := range rangeCampaigns {
		if campaign.StartTime == nil {
			continue
		}
		campaignsByDay[campaign.StartTime.Format(dateLayout)]++
	}

	var chefFoods []models.Food
	if err := s.db.Select("id", "food_name").
		Where("LOWER(chef) = LOWER(?)", chefUsername).
		Order("id").
		Find(&chefFoods).Error; err != nil {
		return nil, fmt.Errorf("load chef foods: %w", err)
	}
	chefFoodIDs := make(map[string]bool, len(chefFoods))
	chefFoodNames := make(map[string]string, len(chefFoods))
	foodQuantity := map[string]int{}
	foodOrder := make([]string, 0, len(chefFoods))
	for _, food := range chefFoods {
		foodID := strconv.FormatUint(uint64(food.ID), 10)
		chefFoodIDs[foodID] = true
		chefFoodNames[foodID] = food.FoodName
		foodQuantity[foodID] = 0
		foodOrder = append(foodOrder, foodID)
	}

	var orders []models.Order
	if err := s.db.Select("order_time", "food_items", "food_price", "quantity").
		Where("order_time >= ? AND order_time < ?", start, end).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	ordersInRange := 0
	revenueInRange := 0.0
	revenueByDay := map[string]float64{}
	ordersByDay := map[string]int{}

	for _, order := range orders {
		allFoodIDs := ParseFoodIDs(order.FoodItems)
		if len(allFoodIDs) == 0 {
			continue
		}

		matched := matchedFoodIDs(allFoodIDs, chefFoodIDs)
		if len(matched) == 0 {
			continue
		}

		ordersInRange++
		ratio := float64(len(matched)) / float64(len(allFoodIDs))
		proportional := order.FoodPrice * ratio
		revenueInRange += proportional

		day := order.OrderTime.Format(dateLayout)
		revenueByDay[day] += proportional
		ordersByDay[day]++

		quantity := order.Quantity
		if quantity <= 0 {
			quantity = len(matched)
		}
		// Ties round to the nearest even integer, so a quantity of 5
		// split across two foods credits 2 each.
		distributed := int(math.RoundToEven(float64(quantity) / float64(len(matched))))
		if distributed < 1 {
			distributed = 1
		}
		for _, foodID := range matched {
			foodQuantity[foodID] += distributed
		}
	}

	revenueInRange = round2(revenueInRange)
	avgOrderValue := 0.0
	if ordersInRange > 0 {
		avgOrderValue = round2(revenueInRange / float64(ordersInRange))
	}

	campaignsSeries := make([]int, len(dateLabels))
	ordersSeries := make([]int, len(dateLabels))
	revenueSeries := make([]float64, len(dateLabels))
	for idx, label := range dateLabels {
		campaignsSeries[idx] = campaignsByDay[label]
		ordersSeries[idx] = ordersByDay[label]
		revenueSeries[idx] = round2(revenueByDay[label])
	}

	topCampaigns := make([]ChefCampaign, 0, 5)
	for idx, campaign := range rangeCampaigns {
		if idx == 5 {
			break
		}
		topCampaigns = append(topCampaigns, ChefCampaign{
			CampaignID:        strconv.FormatUint(uint64(campaign.ID), 10),
			Title:             campaign.Title,
			Status:            campaign.Status,
			TotalOrders:       campaign.TotalOrders,
			QuantityAvailable: campaign.QuantityAvailable,
		})
	}

	sort.SliceStable(foodOrder, func(i, j int) bool {
		return foodQuantity[foodOrder[i]] > foodQuantity[foodOrder[j]]
	})
	if len(foodOrder) > 5 {
		foodOrder = foodOrder[:5]
	}
	topFoods := make([]FoodQuantity, 0, len(foodOrder))
	for _, foodID := range foodOrder {
		name, ok := chefFoodNames[foodID]
		if !ok {
			name = "Unknown Food"
		}
		topFoods = append(topFoods, FoodQuantity{FoodID: foodID, Name: name, QuantitySold: foodQuantity[foodID]})
	}

	yearly, err := s.chefYearlyRevenue(info.EndDate.Year(), chefFoodIDs)
	if err != nil {
		return nil, err
	}

	summary := ChefSummary{
		Balance:                round2(chef.Balance),
		CampaignPoints:         chef.CampaignPoints,
		SubscriptionStatus:     chef.SubscriptionStatus,
		ActiveCampaigns:        activeCampaigns,
		CampaignsInRange:       campaignsInRange,
		OrdersInRange:          ordersInRange,
		RevenueInRange:         revenueInRange,
		AvgOrderValue:          avgOrderValue,
		LifetimeTotalOrders:    chef.TotalOrdersReceived,
		LifetimeTotalCampaigns: chef.TotalCampaigns,
	}

	payload := &ChefDashboardPayload{
		Range: RangeSection{
			Key:       info.Key,
			Label:     info.Label,
			StartDate: info.StartDate.Format(dateLayout),
			EndDate:   info.EndDate.Format(dateLayout),
		},
		Chef:    meta,
		Summary: summary,
		Trends: ChefTrends{
			Labels:          dateLabels,
			CampaignsPerDay: campaignsSeries,
			OrdersPerDay:    ordersSeries,
			RevenuePerDay:   revenueSeries,
		},
		Yearly: yearly,
		Top: ChefTopPerformers{
			Campaigns: topCampaigns,
			Foods:     topFoods,
		},
		Metrics: ChefLegacyMetrics{
			Balance:             summary.Balance,
			TotalOrdersReceived: summary.LifetimeTotalOrders,
			TotalCampaigns:      summary.LifetimeTotalCampaigns,
			CampaignPoints:      summary.CampaignPoints,
		},
		Status: http.StatusOK,
	}
	if meta.FallbackUsed {
		payload.Warning = fmt.Sprintf(
			"Showing dashboard for chef '%s'. Use ?chef=<chef_username> to view a specific chef.",
			chefUsername)
	}
	return payload, nil
}

func matchedFoodIDs(allFoodIDs []string, chefFoodIDs map[string]bool) []string {
	matched := []string{}
	for _, foodID := range allFoodIDs {
		if chefFoodIDs[foodID] {
			matched = append(matched, foodID)
		}
	}
	return matched
}

// chefYearlyRevenue attributes order revenue proportionally per month
// of the given year.
func (s *Service) chefYearlyRevenue(year int, chefFoodIDs map[string]bool) (YearlyRevenue, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(1, 0, 0)

	var orders []models.Order
	if err := s.db.Select("order_time", "food_items", "food_price").
		Where("order_time >= ? AND order_time < ?", yearStart, yearEnd).
		Find(&orders).Error; err != nil {
		return YearlyRevenue{}, fmt.Errorf("load yearly orders: %w", err)
	}

	var byMonth [12]float64
	for _, order := range orders {
		allFoodIDs := ParseFoodIDs(order.FoodItems)
		if len(allFoodIDs) == 0 {
			continue
		}
		matched := matchedFoodIDs(allFoodIDs, chefFoodIDs)
		if len(matched) == 0 {
			continue
		}
		ratio := float64(len(matched)) / float64(len(allFoodIDs))
		byMonth[int(order.OrderTime.Month())-1] += order.FoodPrice * ratio
	}

	perMonth := make([]float64, 12)
	for idx := range byMonth {
		perMonth[idx] = round2(byMonth[idx])
	}

	return YearlyRevenue{
		Year:            year,
		Labels:          append([]string(nil), monthLabels...),
		RevenuePerMonth: perMonth,
	}, nil
}
