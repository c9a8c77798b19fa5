package reporting

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// ParseFoodIDs extracts the list of food ids referenced by an order.
// The payload may be a JSON array of ids, a JSON object keyed by id, or
// a plain comma-separated list; malformed JSON falls back to the comma
// split. The function never fails and preserves order and duplicates.
func ParseFoodIDs(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}

	if strings.HasPrefix(trimmed, "[") {
		if ids, ok := parseJSONArray(trimmed); ok {
			return ids
		}
	}
	if strings.HasPrefix(trimmed, "{") {
		if ids, ok := parseJSONObjectKeys(trimmed); ok {
			return ids
		}
	}

	ids := []string{}
	for _, item := range strings.Split(trimmed, ",") {
		if cleaned := strings.TrimSpace(item); cleaned != "" {
			ids = append(ids, cleaned)
		}
	}
	return ids
}

func parseJSONArray(raw string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var items []interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, false
	}

	ids := []string{}
	for _, item := range items {
		if cleaned := strings.TrimSpace(stringify(item)); cleaned != "" {
			ids = append(ids, cleaned)
		}
	}
	return ids, true
}

// parseJSONObjectKeys walks tokens instead of decoding into a map so
// key order survives.
func parseJSONObjectKeys(raw string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, false
	}

	ids := []string{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, false
		}
		key, _ := keyTok.(string)
		if cleaned := strings.TrimSpace(key); cleaned != "" {
			ids = append(ids, cleaned)
		}
		if err := skipValue(dec); err != nil {
			return nil, false
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, false
	}
	return ids, true
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

func stringify(item interface{}) string {
	switch value := item.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
