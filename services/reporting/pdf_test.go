package reporting

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestPDFEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`back\slash`, `back\\slash`},
		{"(parens)", `\(parens\)`},
		{"café", "caf\xe9"},
		{"arrow → here", "arrow ? here"},
	}
	for _, tt := range tests {
		if got := pdfEscape(tt.in); got != tt.want {
			t.Errorf("pdfEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"short", "hello world", 95, []string{"hello world"}},
		{"wraps at width", "aa bb cc", 5, []string{"aa bb", "cc"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"blank", "   ", 95, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for idx := range got {
				if got[idx] != tt.want[idx] {
					t.Errorf("line %d = %q, want %q", idx, got[idx], tt.want[idx])
				}
			}
		})
	}
}

func TestPaginateLinesEmpty(t *testing.T) {
	pages := paginateLines(nil, pdfLinesPerPage)
	if len(pages) != 1 || len(pages[0]) != 1 {
		t.Fatalf("empty input pages = %v", pages)
	}
	if pages[0][0] != "Admin dashboard report has no data." {
		t.Errorf("placeholder = %q", pages[0][0])
	}
}

func TestPaginateLinesChunks(t *testing.T) {
	lines := make([]string, 100)
	pages := paginateLines(lines, 46)
	if len(pages) != 3 {
		t.Fatalf("page count = %d, want 3", len(pages))
	}
	if len(pages[0]) != 46 || len(pages[2]) != 8 {
		t.Errorf("page sizes = %d/%d/%d", len(pages[0]), len(pages[1]), len(pages[2]))
	}
}

func TestBuildDashboardPDFStructure(t *testing.T) {
	document := BuildDashboardPDF(samplePayload())

	if !bytes.HasPrefix(document, []byte("%PDF-1.4\n")) {
		t.Fatal("document does not start with the PDF header")
	}
	if !bytes.HasSuffix(document, []byte("%%EOF")) {
		t.Fatal("document does not end with the EOF marker")
	}

	// One text page plus the chart page.
	if !bytes.Contains(document, []byte("/Kids [4 0 R 6 0 R] /Count 2")) {
		t.Error("page tree does not declare two pages")
	}
	if PageCount(document) != 2 {
		t.Errorf("PageCount = %d, want 2", PageCount(document))
	}
	if !bytes.Contains(document, []byte("(Food Now - Admin Dashboard Report) Tj")) {
		t.Error("report title missing from content stream")
	}
	if !bytes.Contains(document, []byte("(Visual Summary Charts) Tj")) {
		t.Error("chart page heading missing")
	}
	if !bytes.Contains(document, []byte("/BaseFont /Helvetica")) {
		t.Error("font object missing")
	}

	// 7 objects: catalog, pages, font, 2x(page+content).
	if !bytes.Contains(document, []byte("xref\n0 8\n")) {
		t.Error("xref header does not cover 8 entries")
	}
	if !bytes.Contains(document, []byte("/Size 8 /Root 1 0 R")) {
		t.Error("trailer size/root mismatch")
	}
}

func TestBuildDashboardPDFOffsets(t *testing.T) {
	document := BuildDashboardPDF(samplePayload())

	// startxref points at the xref table.
	tail := document[bytes.LastIndex(document, []byte("startxref")):]
	fields := strings.Fields(string(tail))
	if len(fields) < 2 {
		t.Fatal("startxref block malformed")
	}
	xrefPos, err := strconv.Atoi(fields[1])
	if err != nil {
		t.Fatalf("startxref offset not numeric: %v", err)
	}
	if !bytes.HasPrefix(document[xrefPos:], []byte("xref\n")) {
		t.Fatalf("startxref %d does not point at the xref table", xrefPos)
	}

	// Every recorded offset points at the matching "N 0 obj" line.
	entryRe := regexp.MustCompile(`(?m)^(\d{10}) 00000 n `)
	matches := entryRe.FindAllStringSubmatch(string(document[xrefPos:]), -1)
	if len(matches) != 7 {
		t.Fatalf("xref entries = %d, want 7", len(matches))
	}
	for idx, match := range matches {
		offset, _ := strconv.Atoi(match[1])
		wanted := []byte(strconv.Itoa(idx+1) + " 0 obj\n")
		if !bytes.HasPrefix(document[offset:], wanted) {
			t.Errorf("object %d offset %d does not point at its header", idx+1, offset)
		}
	}
}

func TestBuildDashboardPDFStreamLengths(t *testing.T) {
	document := string(BuildDashboardPDF(samplePayload()))

	streamRe := regexp.MustCompile(`<< /Length (\d+) >>\nstream\n`)
	locs := streamRe.FindAllStringSubmatchIndex(document, -1)
	if len(locs) != 2 {
		t.Fatalf("stream count = %d, want 2", len(locs))
	}
	for _, loc := range locs {
		declared, _ := strconv.Atoi(document[loc[2]:loc[3]])
		streamStart := loc[1]
		end := strings.Index(document[streamStart:], "\nendstream")
		if end != declared {
			t.Errorf("declared /Length %d but stream holds %d bytes", declared, end)
		}
	}
}

func TestReportFilename(t *testing.T) {
	got := ReportFilename(samplePayload(), "csv")
	want := "admin-dashboard-report-2025-06-04-2025-06-05.csv"
	if got != want {
		t.Errorf("ReportFilename = %q, want %q", got, want)
	}
}
