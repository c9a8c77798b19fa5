package reporting

import (
	"math"
	"strings"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/errors"
)

const dateLayout = "2006-01-02"

// nowFunc is swapped by tests to pin the reporting clock.
var nowFunc = time.Now

// RangeLabels maps range keys to their display labels.
var RangeLabels = map[string]string{
	"today":  "Today",
	"7d":     "Last 7 Days",
	"30d":    "Last 30 Days",
	"month":  "This Month",
	"custom": "Custom Range",
}

// RangeInfo is a resolved, inclusive date window. StartDate and EndDate
// are local midnights.
type RangeInfo struct {
	Key       string
	Label     string
	StartDate time.Time
	EndDate   time.Time
	DaySpan   int
}

// DateAxis returns one midnight per day of the window.
func (r *RangeInfo) DateAxis() []time.Time {
	axis := make([]time.Time, r.DaySpan)
	for idx := 0; idx < r.DaySpan; idx++ {
		axis[idx] = r.StartDate.AddDate(0, 0, idx)
	}
	return axis
}

// DateLabels returns the axis as ISO date strings.
func (r *RangeInfo) DateLabels() []string {
	axis := r.DateAxis()
	labels := make([]string, len(axis))
	for idx, day := range axis {
		labels[idx] = day.Format(dateLayout)
	}
	return labels
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func safeDateParse(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ResolveRange normalizes a requested range into a concrete window.
// Empty rangeKey defaults to "30d". Windows over 366 days are rejected.
func ResolveRange(rangeKey, startRaw, endRaw string) (*RangeInfo, error) {
	today := midnight(nowFunc())
	normalized := strings.ToLower(strings.TrimSpace(rangeKey))
	if normalized == "" {
		normalized = "30d"
	}

	var startDate, endDate time.Time
	switch normalized {
	case "today":
		startDate, endDate = today, today
	case "7d":
		startDate, endDate = today.AddDate(0, 0, -6), today
	case "30d":
		startDate, endDate = today.AddDate(0, 0, -29), today
	case "month":
		startDate = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		endDate = today
	case "custom":
		var okStart, okEnd bool
		startDate, okStart = safeDateParse(startRaw)
		endDate, okEnd = safeDateParse(endRaw)
		if !okStart || !okEnd {
			return nil, errors.NewAppError(errors.ErrCodeInvalidRange,
				"For custom range, start_date and end_date are required (YYYY-MM-DD).", nil)
		}
	default:
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange,
			"Invalid range. Use: today, 7d, 30d, month, custom.", nil)
	}

	if startDate.After(endDate) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange,
			"start_date cannot be after end_date.", nil)
	}

	daySpan := int(math.Round(endDate.Sub(startDate).Hours()/24)) + 1
	if daySpan > 366 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRange,
			"Date range is too large. Please use 366 days or fewer.", nil)
	}

	return &RangeInfo{
		Key:       normalized,
		Label:     rangeLabel(normalized),
		StartDate: startDate,
		EndDate:   endDate,
		DaySpan:   daySpan,
	}, nil
}

func rangeLabel(key string) string {
	if label, ok := RangeLabels[key]; ok {
		return label
	}
	return "Custom Range"
}
