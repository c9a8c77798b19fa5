package reporting

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

type chartColor struct {
	R, G, B float64
}

// barChart generates PDF content-stream commands for one bar chart.
// Coordinates are PDF points with the origin at the bottom left.
type barChart struct {
	X, Y          float64
	Width, Height float64
	Title         string
	Values        []float64
	Color         chartColor
	XLabels       []string
	MaxXTicks     int
}

// downsampleWithLabels averages values into at most maxPoints buckets,
// labeling each bucket with the label of its last source point.
func downsampleWithLabels(values []float64, labels []string, maxPoints int) ([]float64, []string) {
	if len(values) <= maxPoints {
		outLabels := labels
		if len(outLabels) > len(values) {
			outLabels = outLabels[:len(values)]
		}
		return append([]float64(nil), values...), append([]string(nil), outLabels...)
	}

	chunkSize := float64(len(values)) / float64(maxPoints)
	sampledValues := make([]float64, 0, maxPoints)
	sampledLabels := make([]string, 0, maxPoints)
	for idx := 0; idx < maxPoints; idx++ {
		start := int(math.Round(float64(idx) * chunkSize))
		end := int(math.Round(float64(idx+1) * chunkSize))
		if end < start+1 {
			end = start + 1
		}

		sum := 0.0
		count := 0
		for pos := start; pos < end && pos < len(values); pos++ {
			sum += values[pos]
			count++
		}
		if count == 0 {
			sampledValues = append(sampledValues, 0)
		} else {
			sampledValues = append(sampledValues, sum/float64(count))
		}

		labelIndex := end - 1
		if labelIndex > len(labels)-1 {
			labelIndex = len(labels) - 1
		}
		if labelIndex >= 0 {
			sampledLabels = append(sampledLabels, labels[labelIndex])
		} else {
			sampledLabels = append(sampledLabels, "")
		}
	}
	return sampledValues, sampledLabels
}

// tickIndices picks which bars get x-axis labels: all of them up to
// maxTicks, otherwise maxTicks evenly spaced indices including both
// endpoints.
func tickIndices(count, maxTicks int) []int {
	if count <= 0 {
		return []int{}
	}
	if count <= maxTicks {
		indices := make([]int, count)
		for idx := range indices {
			indices[idx] = idx
		}
		return indices
	}

	steps := maxTicks - 1
	last := count - 1
	set := map[int]bool{}
	for idx := 0; idx < maxTicks; idx++ {
		set[int(math.Round(float64(idx*last)/float64(steps)))] = true
	}
	indices := make([]int, 0, len(set))
	for idx := range set {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

// formatAxisValue abbreviates axis numbers with K/M suffixes.
func formatAxisValue(value float64) string {
	absolute := math.Abs(value)
	if absolute >= 1_000_000 {
		return fmt.Sprintf("%.1fM", value/1_000_000)
	}
	if absolute >= 1_000 {
		return fmt.Sprintf("%.1fK", value/1_000)
	}
	if value == math.Trunc(value) {
		return strconv.Itoa(int(value))
	}
	return fmt.Sprintf("%.2f", value)
}

// shortXLabel strips the year from ISO dates, otherwise truncates to
// eight characters.
func shortXLabel(label string) string {
	runes := []rune(label)
	if len(runes) >= 10 && runes[4] == '-' && runes[7] == '-' {
		return string(runes[5:])
	}
	if len(runes) > 8 {
		return string(runes[:8])
	}
	return label
}

func (b barChart) commands() []string {
	commands := []string{}
	commands = append(commands, fmt.Sprintf("BT /F1 10 Tf %.2f %.2f Td (%s) Tj ET",
		b.X, b.Y+b.Height+12, pdfEscape(b.Title)))

	// Chart frame
	commands = append(commands, "0.76 0.81 0.88 RG", "0.8 w",
		fmt.Sprintf("%.2f %.2f %.2f %.2f re S", b.X, b.Y, b.Width, b.Height))

	// Horizontal guides
	commands = append(commands, "0.88 0.90 0.95 RG")
	for idx := 1; idx < 4; idx++ {
		guideY := b.Y + b.Height*float64(idx)/4
		commands = append(commands, fmt.Sprintf("%.2f %.2f m %.2f %.2f l S",
			b.X, guideY, b.X+b.Width, guideY))
	}

	maxValue := 1.0
	for _, value := range b.Values {
		if value > maxValue {
			maxValue = value
		}
	}
	count := len(b.Values)
	if count < 1 {
		count = 1
	}
	gap := math.Max(1.8, b.Width*0.01)
	totalGap := gap * float64(count+1)
	barWidth := math.Max(1.0, (b.Width-totalGap)/float64(count))

	commands = append(commands, fmt.Sprintf("%.3f %.3f %.3f rg", b.Color.R, b.Color.G, b.Color.B))
	for idx, value := range b.Values {
		barHeight := (value / maxValue) * (b.Height - 8)
		barX := b.X + gap + float64(idx)*(barWidth+gap)
		barY := b.Y + 2
		commands = append(commands, fmt.Sprintf("%.2f %.2f %.2f %.2f re f",
			barX, barY, barWidth, barHeight))
	}

	// Y-axis numbers
	commands = append(commands, "0.16 0.19 0.25 rg")
	for idx := 0; idx < 5; idx++ {
		ratio := float64(idx) / 4
		yValue := maxValue * ratio
		yPos := b.Y + b.Height*ratio - 3
		commands = append(commands, fmt.Sprintf("BT /F1 7 Tf %.2f %.2f Td (%s) Tj ET",
			b.X-30, yPos, pdfEscape(formatAxisValue(yValue))))
	}

	// X-axis labels
	labels := b.XLabels
	if len(labels) == 0 {
		labels = make([]string, count)
		for idx := range labels {
			labels[idx] = strconv.Itoa(idx + 1)
		}
	}
	for len(labels) < count {
		labels = append(labels, strconv.Itoa(len(labels)+1))
	}
	for _, idx := range tickIndices(count, b.MaxXTicks) {
		barX := b.X + gap + float64(idx)*(barWidth+gap)
		labelX := barX + barWidth/2 - 10
		labelY := b.Y - 11
		commands = append(commands, fmt.Sprintf("BT /F1 7 Tf %.2f %.2f Td (%s) Tj ET",
			labelX, labelY, pdfEscape(shortXLabel(labels[idx]))))
	}

	commands = append(commands, fmt.Sprintf("BT /F1 8 Tf %.2f %.2f Td (Max: %s) Tj ET",
		b.X+b.Width-120, b.Y+b.Height+1, pdfEscape(formatAmount(round2(maxValue)))))
	return commands
}
