package reporting

import (
	"reflect"
	"testing"
)

func TestParseFoodIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"json array of strings", `["1", "2", "3"]`, []string{"1", "2", "3"}},
		{"json array of numbers", `[12, 15]`, []string{"12", "15"}},
		{"json array skips blanks", `["1", "", "  ", "2"]`, []string{"1", "2"}},
		{"json array keeps duplicates", `["7", "7", "9"]`, []string{"7", "7", "9"}},
		{"json object keys", `{"4": 2, "9": 1}`, []string{"4", "9"}},
		{"json object nested values", `{"4": {"qty": 2}, "9": [1, 2]}`, []string{"4", "9"}},
		{"comma list", "1, 2 ,3", []string{"1", "2", "3"}},
		{"comma list skips empties", "1,,2,", []string{"1", "2"}},
		{"single id", "42", []string{"42"}},
		{"malformed json falls back", `["1", "2"`, []string{`["1"`, `"2"`}},
		{"malformed object falls back", `{"1": `, []string{`{"1":`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFoodIDs(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFoodIDs(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseFoodIDsNeverNil(t *testing.T) {
	if got := ParseFoodIDs(""); got == nil {
		t.Fatal("ParseFoodIDs returned nil for empty input")
	}
}
