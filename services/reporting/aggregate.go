package reporting

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/constants"
	"github.com/Jahid-Hassan-Noor/food-now/models"

	"gorm.io/gorm"
)

// Service builds dashboard payloads from the database.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// rangeBounds converts the inclusive window into a half-open predicate
// usable on timestamp columns.
func rangeBounds(info *RangeInfo) (time.Time, time.Time) {
	return info.StartDate, info.EndDate.AddDate(0, 0, 1)
}

// BuildDashboardPayload aggregates the admin dashboard for the window.
// Pending and completed transactions are always summed together, so
// money still under review shows up in revenue. Zero data produces a
// zero-filled payload, never an error.
func (s *Service) BuildDashboardPayload(info *RangeInfo) (*DashboardPayload, error) {
	start, end := rangeBounds(info)
	dateLabels := info.DateLabels()

	var totalUsers int64
	if err := s.db.Model(&models.User{}).Where("role = ?", constants.RoleUser).Count(&totalUsers).Error; err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if totalUsers == 0 {
		if err := s.db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			return nil, fmt.Errorf("count users: %w", err)
		}
	}

	var totalChefs int64
	if err := s.db.Model(&models.Chef{}).Count(&totalChefs).Error; err != nil {
		return nil, fmt.Errorf("count chefs: %w", err)
	}

	var campaignsCount int64
	if err := s.db.Model(&models.Campaign{}).
		Where("start_time >= ? AND start_time < ?", start, end).
		Count(&campaignsCount).Error; err != nil {
		return nil, fmt.Errorf("count campaigns: %w", err)
	}

	var ordersCount int64
	if err := s.db.Model(&models.Order{}).
		Where("order_time >= ? AND order_time < ?", start, end).
		Count(&ordersCount).Error; err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	pendingRows, completedRows, err := s.loadTransactions(start, end)
	if err != nil {
		return nil, err
	}

	rechargeTotal := 0.0
	rechargeByDay := map[string]float64{}
	chefRevenue := map[string]float64{}
	chefOrder := []string{}
	addTransaction := func(chef string, amount float64, at time.Time) {
		rechargeTotal += amount
		rechargeByDay[at.Format(dateLayout)] += amount
		name := trimmedChef(chef)
		if name == "" {
			return
		}
		if _, seen := chefRevenue[name]; !seen {
			chefOrder = append(chefOrder, name)
		}
		chefRevenue[name] += amount
	}
	for _, row := range pendingRows {
		addTransaction(row.Chef, row.Amount, row.TransactionTime)
	}
	for _, row := range completedRows {
		addTransaction(row.Chef, row.Amount, row.TransactionTime)
	}

	campaignsByDay, err := s.campaignStartsByDay(start, end)
	if err != nil {
		return nil, err
	}

	orderRows, err := s.loadOrders(start, end)
	if err != nil {
		return nil, err
	}
	ordersByDay := map[string]int{}
	for _, row := range orderRows {
		ordersByDay[row.OrderTime.Format(dateLayout)]++
	}

	campaignsSeries := make([]int, len(dateLabels))
	rechargeSeries := make([]float64, len(dateLabels))
	ordersSeries := make([]int, len(dateLabels))
	for idx, label := range dateLabels {
		campaignsSeries[idx] = campaignsByDay[label]
		rechargeSeries[idx] = round2(rechargeByDay[label])
		ordersSeries[idx] = ordersByDay[label]
	}

	topChefs := topChefsByRevenue(chefRevenue, chefOrder)
	topCampaigns, err := s.topCampaignsByOrders(start, end)
	if err != nil {
		return nil, err
	}
	topFoods, err := s.topFoodsByQuantity(orderRows)
	if err != nil {
		return nil, err
	}

	yearly, err := s.yearlyRevenue(info.EndDate.Year())
	if err != nil {
		return nil, err
	}

	return &DashboardPayload{
		Range: RangeSection{
			Key:       info.Key,
			Label:     info.Label,
			StartDate: info.StartDate.Format(dateLayout),
			EndDate:   info.EndDate.Format(dateLayout),
		},
		Summary: Summary{
			TotalUsers:         totalUsers,
			TotalChefs:         totalChefs,
			CampaignsInRange:   campaignsCount,
			RechargeInRange:    round2(rechargeTotal),
			OrdersInRange:      ordersCount,
			CampaignsThisMonth: campaignsCount,
			RechargeThisMonth:  round2(rechargeTotal),
			OrdersToday:        ordersCount,
		},
		Daily: DailyTrends{
			Labels:          dateLabels,
			CampaignsPerDay: campaignsSeries,
			RechargePerDay:  rechargeSeries,
			OrdersPerDay:    ordersSeries,
		},
		Yearly: yearly,
		Top: TopPerformers{
			ChefsByRevenue:    topChefs,
			CampaignsByOrders: topCampaigns,
			FoodsByQuantity:   topFoods,
		},
	}, nil
}

type transactionRow struct {
	Chef            string
	Amount          float64
	TransactionTime time.Time
}

func (s *Service) loadTransactions(start, end time.Time) ([]transactionRow, []transactionRow, error) {
	var pending []transactionRow
	if err := s.db.Model(&models.PendingTransaction{}).
		Select("chef", "amount", "transaction_time").
		Where("transaction_time >= ? AND transaction_time < ?", start, end).
		Find(&pending).Error; err != nil {
		return nil, nil, fmt.Errorf("load pending transactions: %w", err)
	}

	var completed []transactionRow
	if err := s.db.Model(&models.TransactionHistory{}).
		Select("chef", "amount", "transaction_time").
		Where("transaction_time >= ? AND transaction_time < ?", start, end).
		Find(&completed).Error; err != nil {
		return nil, nil, fmt.Errorf("load completed transactions: %w", err)
	}

	return pending, completed, nil
}

func (s *Service) campaignStartsByDay(start, end time.Time) (map[string]int, error) {
	var campaigns []models.Campaign
	if err := s.db.Select("start_time").
		Where("start_time >= ? AND start_time < ?", start, end).
		Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("load campaign starts: %w", err)
	}

	byDay := map[string]int{}
	for _, campaign := range campaigns {
		if campaign.StartTime == nil {
			continue
		}
		byDay[campaign.StartTime.Format(dateLayout)]++
	}
	return byDay, nil
}

func (s *Service) loadOrders(start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Select("order_time", "food_items", "quantity").
		Where("order_time >= ? AND order_time < ?", start, end).
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

func trimmedChef(name string) string {
	return strings.TrimSpace(name)
}

// topChefsByRevenue ranks chefs by summed transaction amounts, keeping
// first-seen order on ties.
func topChefsByRevenue(revenue map[string]float64, order []string) []ChefRevenue {
	names := append([]string(nil), order...)
	sort.SliceStable(names, func(i, j int) bool {
		return revenue[names[i]] > revenue[names[j]]
	})
	if len(names) > 5 {
		names = names[:5]
	}

	top := make([]ChefRevenue, 0, len(names))
	for _, name := range names {
		top = append(top, ChefRevenue{Chef: name, Revenue: round2(revenue[name])})
	}
	return top
}

// topCampaignsByOrders ranks campaigns started in the window; when none
// started there, it falls back to the system-wide top five.
func (s *Service) topCampaignsByOrders(start, end time.Time) ([]CampaignOrders, error) {
	var campaigns []models.Campaign
	if err := s.db.
		Where("start_time >= ? AND start_time < ?", start, end).
		Order("total_orders DESC, start_time DESC").
		Limit(5).
		Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("load top campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		if err := s.db.
			Order("total_orders DESC, start_time DESC").
			Limit(5).
			Find(&campaigns).Error; err != nil {
			return nil, fmt.Errorf("load top campaigns: %w", err)
		}
	}

	top := make([]CampaignOrders, 0, len(campaigns))
	for _, campaign := range campaigns {
		top = append(top, CampaignOrders{
			CampaignID:  strconv.FormatUint(uint64(campaign.ID), 10),
			Title:       campaign.Title,
			Chef:        campaign.Chef,
			TotalOrders: campaign.TotalOrders,
		})
	}
	return top, nil
}

// topFoodsByQuantity credits each order's full quantity (minimum one)
// to every food id the order references, then ranks the totals.
func (s *Service) topFoodsByQuantity(orders []models.Order) ([]FoodQuantity, error) {
	totals := map[string]int{}
	seen := []string{}
	for _, order := range orders {
		quantity := order.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		for _, foodID := range ParseFoodIDs(order.FoodItems) {
			if _, ok := totals[foodID]; !ok {
				seen = append(seen, foodID)
			}
			totals[foodID] += quantity
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return totals[seen[i]] > totals[seen[j]]
	})
	if len(seen) > 5 {
		seen = seen[:5]
	}

	names, err := s.foodNames(seen)
	if err != nil {
		return nil, err
	}

	top := make([]FoodQuantity, 0, len(seen))
	for _, foodID := range seen {
		name, ok := names[foodID]
		if !ok {
			name = "Unknown Food"
		}
		top = append(top, FoodQuantity{FoodID: foodID, Name: name, QuantitySold: totals[foodID]})
	}
	return top, nil
}

func (s *Service) foodNames(foodIDs []string) (map[string]string, error) {
	numericIDs := make([]uint64, 0, len(foodIDs))
	for _, foodID := range foodIDs {
		if parsed, err := strconv.ParseUint(foodID, 10, 64); err == nil {
			numericIDs = append(numericIDs, parsed)
		}
	}
	if len(numericIDs) == 0 {
		return map[string]string{}, nil
	}

	var foods []models.Food
	if err := s.db.Select("id", "food_name").Where("id IN ?", numericIDs).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("load food names: %w", err)
	}

	names := make(map[string]string, len(foods))
	for _, food := range foods {
		names[strconv.FormatUint(uint64(food.ID), 10)] = food.FoodName
	}
	return names, nil
}

// yearlyRevenue sums pending plus completed transaction amounts per
// calendar month of the given year.
func (s *Service) yearlyRevenue(year int) (YearlyRevenue, error) {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(1, 0, 0)

	pendingRows, completedRows, err := s.loadTransactions(yearStart, yearEnd)
	if err != nil {
		return YearlyRevenue{}, err
	}

	var byMonth [12]float64
	for _, row := range pendingRows {
		byMonth[int(row.TransactionTime.Month())-1] += row.Amount
	}
	for _, row := range completedRows {
		byMonth[int(row.TransactionTime.Month())-1] += row.Amount
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
