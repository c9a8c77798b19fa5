package reporting

import (
	"testing"
	"time"
)

func setNow(t *testing.T, fixed time.Time) {
	t.Helper()
	old := nowFunc
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = old })
}

func TestResolveRangeKeys(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local))

	tests := []struct {
		name      string
		key       string
		wantStart string
		wantEnd   string
		wantSpan  int
		wantLabel string
	}{
		{"today", "today", "2025-06-10", "2025-06-10", 1, "Today"},
		{"seven days", "7d", "2025-06-04", "2025-06-10", 7, "Last 7 Days"},
		{"thirty days", "30d", "2025-05-12", "2025-06-10", 30, "Last 30 Days"},
		{"month", "month", "2025-06-01", "2025-06-10", 10, "This Month"},
		{"default empty", "", "2025-05-12", "2025-06-10", 30, "Last 30 Days"},
		{"normalized case", "  TODAY ", "2025-06-10", "2025-06-10", 1, "Today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ResolveRange(tt.key, "", "")
			if err != nil {
				t.Fatalf("ResolveRange(%q) returned error: %v", tt.key, err)
			}
			if got := info.StartDate.Format(dateLayout); got != tt.wantStart {
				t.Errorf("start = %s, want %s", got, tt.wantStart)
			}
			if got := info.EndDate.Format(dateLayout); got != tt.wantEnd {
				t.Errorf("end = %s, want %s", got, tt.wantEnd)
			}
			if info.DaySpan != tt.wantSpan {
				t.Errorf("day span = %d, want %d", info.DaySpan, tt.wantSpan)
			}
			if info.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", info.Label, tt.wantLabel)
			}
		})
	}
}

func TestResolveRangeCustom(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local))

	info, err := ResolveRange("custom", "2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("custom range returned error: %v", err)
	}
	if info.DaySpan != 31 {
		t.Errorf("day span = %d, want 31", info.DaySpan)
	}
	if info.Key != "custom" || info.Label != "Custom Range" {
		t.Errorf("key/label = %q/%q", info.Key, info.Label)
	}
}

func TestResolveRangeErrors(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local))

	tests := []struct {
		name  string
		key   string
		start string
		end   string
	}{
		{"unknown key", "yearly", "", ""},
		{"custom missing start", "custom", "", "2025-01-31"},
		{"custom missing end", "custom", "2025-01-01", ""},
		{"custom malformed", "custom", "01/01/2025", "2025-01-31"},
		{"start after end", "custom", "2025-02-01", "2025-01-01"},
		{"over 366 days", "custom", "2024-01-01", "2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveRange(tt.key, tt.start, tt.end); err == nil {
				t.Fatalf("ResolveRange(%q, %q, %q) expected error", tt.key, tt.start, tt.end)
			}
		})
	}
}

func TestResolveRangeMaxWindow(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local))

	// Leap year: exactly 366 days is still accepted.
	info, err := ResolveRange("custom", "2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("366-day range returned error: %v", err)
	}
	if info.DaySpan != 366 {
		t.Errorf("day span = %d, want 366", info.DaySpan)
	}
}

func TestDateAxisMatchesSpan(t *testing.T) {
	setNow(t, time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local))

	info, err := ResolveRange("7d", "", "")
	if err != nil {
		t.Fatal(err)
	}
	labels := info.DateLabels()
	if len(labels) != info.DaySpan {
		t.Fatalf("labels length = %d, want %d", len(labels), info.DaySpan)
	}
	if labels[0] != "2025-06-04" || labels[len(labels)-1] != "2025-06-10" {
		t.Errorf("axis bounds = %s..%s", labels[0], labels[len(labels)-1])
	}
}
