package reporting

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// BuildDashboardCSV renders the payload as the multi-section report
// CSV. Section order is fixed: header block, summary, daily trends,
// monthly revenue, top chefs, top campaigns, top foods.
func BuildDashboardCSV(payload *DashboardPayload) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	write := func(fields ...string) {
		w.Write(fields)
	}

	write("Admin Dashboard Report")
	write("Range Label", payload.Range.Label)
	write("Start Date", payload.Range.StartDate)
	write("End Date", payload.Range.EndDate)
	write()

	write("Summary")
	write("Metric", "Value")
	write("Total Users", strconv.FormatInt(payload.Summary.TotalUsers, 10))
	write("Total Chefs", strconv.FormatInt(payload.Summary.TotalChefs, 10))
	write("Campaigns (Range)", strconv.FormatInt(payload.Summary.CampaignsInRange, 10))
	write("Recharge/Revenue (Range)", formatAmount(payload.Summary.RechargeInRange))
	write("Orders (Range)", strconv.FormatInt(payload.Summary.OrdersInRange, 10))
	write()

	write("Daily Trends")
	write("Date", "Campaigns", "Recharge", "Orders")
	for idx, label := range payload.Daily.Labels {
		write(label,
			strconv.Itoa(intAt(payload.Daily.CampaignsPerDay, idx)),
			formatAmount(floatAt(payload.Daily.RechargePerDay, idx)),
			strconv.Itoa(intAt(payload.Daily.OrdersPerDay, idx)),
		)
	}
	write()

	write("Monthly Revenue (" + strconv.Itoa(payload.Yearly.Year) + ")")
	write("Month", "Revenue")
	for idx, month := range payload.Yearly.Labels {
		write(month, formatAmount(floatAt(payload.Yearly.RevenuePerMonth, idx)))
	}
	write()

	write("Top Chefs By Revenue")
	write("Chef", "Revenue")
	for _, item := range payload.Top.ChefsByRevenue {
		write(item.Chef, formatAmount(item.Revenue))
	}
	write()

	write("Top Campaigns By Orders")
	write("Campaign", "Chef", "Orders")
	for _, item := range payload.Top.CampaignsByOrders {
		write(item.Title, item.Chef, strconv.Itoa(item.TotalOrders))
	}
	write()

	write("Top Foods By Quantity Sold")
	write("Food", "Quantity Sold")
	for _, item := range payload.Top.FoodsByQuantity {
		write(item.Name, strconv.Itoa(item.QuantitySold))
	}

	w.Flush()
	return buf.Bytes()
}

func intAt(values []int, idx int) int {
	if idx < len(values) {
		return values[idx]
	}
	return 0
}

func floatAt(values []float64, idx int) float64 {
	if idx < len(values) {
		return values[idx]
	}
	return 0
}
