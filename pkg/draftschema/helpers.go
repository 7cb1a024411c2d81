package draftschema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func asMap(value any) (map[string]any, bool) {
	payload, ok := value.(map[string]any)
	if !ok || payload == nil {
		return nil, false
	}
	return payload, true
}

func nested(payload map[string]any, key string) map[string]any {
	if payload == nil {
		return nil
	}
	sub, _ := asMap(payload[key])
	return sub
}

// pick resolves the layered read order: the sub-object wins, the flat
// top-level field is the backward-compatible fallback.
func pick(primary, fallback map[string]any, key string) (any, bool) {
	if primary != nil {
		if value, ok := primary[key]; ok && value != nil {
			return value, true
		}
	}
	if fallback != nil {
		if value, ok := fallback[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func readString(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	str, _ := payload[key].(string)
	return str
}

func toStringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// toNumber coerces leniently: numbers pass through, numeric strings are
// parsed, anything non-finite or unreadable is treated as absent.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return toNumber(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return toNumber(parsed)
	default:
		return 0, false
	}
}

func toInt(value any) (int, bool) {
	number, ok := toNumber(value)
	if !ok || number != math.Trunc(number) {
		return 0, false
	}
	return int(number), true
}

func toBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}

func toStringSlice(value any) []string {
	var out []string
	switch list := value.(type) {
	case []string:
		for _, item := range list {
			out = appendUnique(out, item)
		}
	case []any:
		for _, item := range list {
			str, ok := item.(string)
			if !ok {
				continue
			}
			out = appendUnique(out, str)
		}
	}
	return out
}

// appendUnique trims the entry and appends it unless empty or already seen.
// First-occurrence order is preserved.
func appendUnique(list []string, entry string) []string {
	trimmed := strings.TrimSpace(entry)
	if trimmed == "" {
		return list
	}
	for _, existing := range list {
		if existing == trimmed {
			return list
		}
	}
	return append(list, trimmed)
}

func mergeUnique(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		for _, entry := range list {
			out = appendUnique(out, entry)
		}
	}
	return out
}
