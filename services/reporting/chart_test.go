package reporting

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestDownsampleWithLabels(t *testing.T) {
	values := make([]float64, 60)
	labels := make([]string, 60)
	for idx := range values {
		values[idx] = float64(idx)
		labels[idx] = fmt.Sprintf("L%d", idx)
	}

	sampledValues, sampledLabels := downsampleWithLabels(values, labels, 30)
	if len(sampledValues) != 30 || len(sampledLabels) != 30 {
		t.Fatalf("sampled lengths = %d/%d, want 30/30", len(sampledValues), len(sampledLabels))
	}
	// Buckets of two: average 0.5, label of the second point.
	if sampledValues[0] != 0.5 || sampledLabels[0] != "L1" {
		t.Errorf("first bucket = %v/%q, want 0.5/L1", sampledValues[0], sampledLabels[0])
	}
	if sampledValues[29] != 58.5 || sampledLabels[29] != "L59" {
		t.Errorf("last bucket = %v/%q, want 58.5/L59", sampledValues[29], sampledLabels[29])
	}
}

func TestDownsampleWithLabelsShortInput(t *testing.T) {
	values := []float64{1, 2, 3}
	labels := []string{"a", "b", "c", "d"}

	sampledValues, sampledLabels := downsampleWithLabels(values, labels, 30)
	if !reflect.DeepEqual(sampledValues, values) {
		t.Errorf("values changed: %v", sampledValues)
	}
	if !reflect.DeepEqual(sampledLabels, []string{"a", "b", "c"}) {
		t.Errorf("labels = %v, want labels trimmed to value count", sampledLabels)
	}
}

func TestTickIndices(t *testing.T) {
	tests := []struct {
		count, maxTicks int
		want            []int
	}{
		{0, 6, []int{}},
		{5, 8, []int{0, 1, 2, 3, 4}},
		{30, 6, []int{0, 6, 12, 17, 23, 29}},
	}
	for _, tt := range tests {
		if got := tickIndices(tt.count, tt.maxTicks); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tickIndices(%d, %d) = %v, want %v", tt.count, tt.maxTicks, got, tt.want)
		}
	}
}

func TestFormatAxisValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{5, "5"},
		{2.5, "2.50"},
		{1500, "1.5K"},
		{2500000, "2.5M"},
		{-1500, "-1.5K"},
	}
	for _, tt := range tests {
		if got := formatAxisValue(tt.value); got != tt.want {
			t.Errorf("formatAxisValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestShortXLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"2025-06-04", "06-04"},
		{"Jun", "Jun"},
		{"Processing", "Processi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortXLabel(tt.label); got != tt.want {
			t.Errorf("shortXLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestBarChartCommands(t *testing.T) {
	chart := barChart{
		X: 50, Y: 120, Width: 245, Height: 220,
		Title:     "Orders (Last 7 Days)",
		Values:    []float64{2, 0, 1},
		Color:     chartColor{0.15, 0.44, 0.88},
		XLabels:   []string{"2025-06-04", "2025-06-05", "2025-06-06"},
		MaxXTicks: 6,
	}
	joined := strings.Join(chart.commands(), "\n")

	if !strings.Contains(joined, "(Orders \\(Last 7 Days\\)) Tj") {
		t.Error("title not escaped into the command stream")
	}
	if !strings.Contains(joined, "0.150 0.440 0.880 rg") {
		t.Error("fill color command missing")
	}
	if !strings.Contains(joined, "50.00 120.00 245.00 220.00 re S") {
		t.Error("frame rectangle missing")
	}
	// Max caption keeps the trailing .0 on whole values.
	if !strings.Contains(joined, "(Max: 2.0) Tj") {
		t.Error("max caption missing or misformatted")
	}
	// ISO date labels lose their year.
	if !strings.Contains(joined, "(06-04) Tj") {
		t.Error("x-axis label not shortened")
	}
}
