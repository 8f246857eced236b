package entity

import "encoding/json"

// Loose accessors for JSON-decoded maps. Each tolerates a missing key,
// a null, or a value of the wrong type and returns the zero/absent form
// instead; field-level data quality issues never abort processing.

// StringField returns m[key] as a string, or "" when absent or not a string.
func StringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// StringPtrField returns m[key] as an optional string; empty and
// non-string values are absent.
func StringPtrField(m map[string]any, key string) *string {
	if v, ok := m[key].(string); ok && v != "" {
		return &v
	}
	return nil
}

// FloatField returns m[key] as a float64, or 0 when absent or non-numeric.
func FloatField(m map[string]any, key string) float64 {
	if v, ok := numeric(m[key]); ok {
		return v
	}
	return 0
}

// FloatPtrField returns m[key] as an optional float64.
func FloatPtrField(m map[string]any, key string) *float64 {
	if v, ok := numeric(m[key]); ok {
		return &v
	}
	return nil
}

// IntPtrField returns m[key] as an optional int, truncating fractional input.
func IntPtrField(m map[string]any, key string) *int {
	if v, ok := numeric(m[key]); ok {
		n := int(v)
		return &n
	}
	return nil
}

// MapField returns m[key] as a nested map, or nil when absent or not an object.
func MapField(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

// SliceField returns m[key] as a slice, or nil when absent or not an array.
func SliceField(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}

// StringSliceField returns m[key] as a string slice, skipping non-string
// elements. Accepts both []string (maps built by ToMap) and []any (maps
// decoded from JSON).
func StringSliceField(m map[string]any, key string) []string {
	if v, ok := m[key].([]string); ok {
		return v
	}
	var out []string
	for _, item := range SliceField(m, key) {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
