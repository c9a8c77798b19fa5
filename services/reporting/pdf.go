package reporting

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const (
	pdfWrapWidth    = 95
	pdfLinesPerPage = 46
)

// pdfEscape makes a string safe for a PDF literal: backslash and
// parentheses are escaped, and anything outside latin-1 becomes '?'.
// The returned string holds one byte per character.
func pdfEscape(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '(':
			b.WriteString(`\(`)
		case r == ')':
			b.WriteString(`\)`)
		case r > 0xFF:
			b.WriteByte('?')
		default:
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// wrapText greedily wraps on spaces at the given width; words longer
// than a whole line are hard-split.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := []string{}
	current := ""
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}
	for _, word := range words {
		for len(word) > width {
			flush()
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()
	return lines
}

// paginateLines chunks lines into pages. An empty report still yields
// one page with a placeholder line.
func paginateLines(lines []string, linesPerPage int) [][]string {
	pages := [][]string{}
	for idx := 0; idx < len(lines); idx += linesPerPage {
		end := idx + linesPerPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, lines[idx:end])
	}
	if len(pages) == 0 {
		pages = append(pages, []string{"Admin dashboard report has no data."})
	}
	return pages
}

// buildPDFDocument assembles a complete PDF: catalog, page tree, a
// shared Helvetica font, then a page/content pair per input page. The
// xref table records the byte offset of every object.
func buildPDFDocument(pageLines [][]string, pageCharts [][]string) []byte {
	objectCount := 3 + 2*len(pageLines)
	objects := make(map[int][]byte, objectCount)

	kidRefs := make([]string, len(pageLines))
	for idx := range pageLines {
		kidRefs[idx] = fmt.Sprintf("%d 0 R", 4+idx*2)
	}

	objects[1] = []byte("<< /Type /Catalog /Pages 2 0 R >>")
	objects[2] = []byte(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kidRefs, " "), len(pageLines)))
	objects[3] = []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for idx, lines := range pageLines {
		pageObjNum := 4 + idx*2
		contentObjNum := pageObjNum + 1

		commands := []string{"BT", "/F1 10 Tf", "50 760 Td", "14 TL"}
		for lineIdx, line := range lines {
			commands = append(commands, "("+pdfEscape(line)+") Tj")
			if lineIdx < len(lines)-1 {
				commands = append(commands, "T*")
			}
		}
		commands = append(commands, "ET")

		if idx < len(pageCharts) {
			commands = append(commands, pageCharts[idx]...)
		}

		streamData := []byte(strings.Join(commands, "\n"))
		var content bytes.Buffer
		fmt.Fprintf(&content, "<< /Length %d >>\nstream\n", len(streamData))
		content.Write(streamData)
		content.WriteString("\nendstream")
		objects[contentObjNum] = content.Bytes()

		objects[pageObjNum] = []byte(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentObjNum))
	}

	var buf bytes.Buffer
	buf.Write([]byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"))

	offsets := make(map[int]int, objectCount)
	for objNum := 1; objNum <= objectCount; objNum++ {
		offsets[objNum] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", objNum)
		buf.Write(objects[objNum])
		buf.WriteString("\nendobj\n")
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objectCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for objNum := 1; objNum <= objectCount; objNum++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[objNum])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF",
		objectCount+1, xrefPos)
	return buf.Bytes()
}

// BuildDashboardPDF renders the payload as a paginated text report
// followed by a final page of bar charts: monthly revenue across the
// top, orders and campaigns side by side below it.
func BuildDashboardPDF(payload *DashboardPayload) []byte {
	lines := []string{
		"Food Now - Admin Dashboard Report",
		fmt.Sprintf("Range: %s (%s to %s)",
			payload.Range.Label, payload.Range.StartDate, payload.Range.EndDate),
		"",
		"Summary",
		fmt.Sprintf("Total Users: %d", payload.Summary.TotalUsers),
		fmt.Sprintf("Total Chefs: %d", payload.Summary.TotalChefs),
		fmt.Sprintf("Campaigns (Range): %d", payload.Summary.CampaignsInRange),
		fmt.Sprintf("Recharge/Revenue (Range): %s", formatAmount(payload.Summary.RechargeInRange)),
		fmt.Sprintf("Orders (Range): %d", payload.Summary.OrdersInRange),
		"",
		"Daily Trends",
	}

	for idx, label := range payload.Daily.Labels {
		lines = append(lines, fmt.Sprintf("%s | campaigns: %d | recharge: %s | orders: %d",
			label,
			intAt(payload.Daily.CampaignsPerDay, idx),
			formatAmount(floatAt(payload.Daily.RechargePerDay, idx)),
			intAt(payload.Daily.OrdersPerDay, idx)))
	}

	lines = append(lines, "", fmt.Sprintf("Monthly Revenue (%d)", payload.Yearly.Year))
	for idx, month := range payload.Yearly.Labels {
		lines = append(lines, fmt.Sprintf("%s: %s",
			month, formatAmount(floatAt(payload.Yearly.RevenuePerMonth, idx))))
	}

	lines = append(lines, "", "Top Chefs By Revenue")
	for _, item := range payload.Top.ChefsByRevenue {
		lines = append(lines, fmt.Sprintf("%s: %s", item.Chef, formatAmount(item.Revenue)))
	}

	lines = append(lines, "", "Top Campaigns By Orders")
	for _, item := range payload.Top.CampaignsByOrders {
		lines = append(lines, fmt.Sprintf("%s | chef: %s | orders: %d",
			item.Title, item.Chef, item.TotalOrders))
	}

	lines = append(lines, "", "Top Foods By Quantity Sold")
	for _, item := range payload.Top.FoodsByQuantity {
		lines = append(lines, fmt.Sprintf("%s: %d", item.Name, item.QuantitySold))
	}

	wrapped := []string{}
	for _, line := range lines {
		if line == "" {
			wrapped = append(wrapped, "")
			continue
		}
		pieces := wrapText(line, pdfWrapWidth)
		if len(pieces) == 0 {
			pieces = []string{""}
		}
		wrapped = append(wrapped, pieces...)
	}

	pages := paginateLines(wrapped, pdfLinesPerPage)
	charts := make([][]string, len(pages))

	monthlyValues := append([]float64(nil), payload.Yearly.RevenuePerMonth...)
	if len(monthlyValues) == 0 {
		monthlyValues = []float64{0}
	}

	ordersSeries, ordersLabels := downsampleWithLabels(
		intsToFloats(payload.Daily.OrdersPerDay), payload.Daily.Labels, 30)
	if len(ordersSeries) == 0 {
		ordersSeries = []float64{0}
	}
	campaignsSeries, campaignsLabels := downsampleWithLabels(
		intsToFloats(payload.Daily.CampaignsPerDay), payload.Daily.Labels, 30)
	if len(campaignsSeries) == 0 {
		campaignsSeries = []float64{0}
	}

	visualCommands := []string{}
	visualCommands = append(visualCommands, barChart{
		X: 50, Y: 430, Width: 510, Height: 260,
		Title:     fmt.Sprintf("Monthly Revenue (%d)", payload.Yearly.Year),
		Values:    monthlyValues,
		Color:     chartColor{0.11, 0.66, 0.33},
		XLabels:   payload.Yearly.Labels,
		MaxXTicks: 12,
	}.commands()...)
	visualCommands = append(visualCommands, barChart{
		X: 50, Y: 120, Width: 245, Height: 220,
		Title:     fmt.Sprintf("Orders (%s)", payload.Range.Label),
		Values:    ordersSeries,
		Color:     chartColor{0.15, 0.44, 0.88},
		XLabels:   ordersLabels,
		MaxXTicks: 6,
	}.commands()...)
	visualCommands = append(visualCommands, barChart{
		X: 315, Y: 120, Width: 245, Height: 220,
		Title:     fmt.Sprintf("Campaigns (%s)", payload.Range.Label),
		Values:    campaignsSeries,
		Color:     chartColor{0.90, 0.35, 0.11},
		XLabels:   campaignsLabels,
		MaxXTicks: 6,
	}.commands()...)

	pages = append(pages, []string{"Visual Summary Charts", ""})
	charts = append(charts, visualCommands)

	return buildPDFDocument(pages, charts)
}

func intsToFloats(values []int) []float64 {
	floats := make([]float64, len(values))
	for idx, value := range values {
		floats[idx] = float64(value)
	}
	return floats
}

// ReportFilename names an export download for the resolved window.
func ReportFilename(payload *DashboardPayload, extension string) string {
	return "admin-dashboard-report-" + payload.Range.StartDate + "-" + payload.Range.EndDate + "." + extension
}

// PageCount reports how many pages a built document declares; used by
// handlers to log export sizes.
func PageCount(document []byte) int {
	marker := []byte("/Count ")
	idx := bytes.Index(document, marker)
	if idx < 0 {
		return 0
	}
	rest := document[idx+len(marker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	count, _ := strconv.Atoi(string(rest[:end]))
	return count
}
