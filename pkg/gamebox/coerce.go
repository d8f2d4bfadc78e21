package gamebox

import (
	"strconv"
	"strings"
)

// Coercion helpers for values pulled out of the metadata mapping. TOML and
// plist parsing produce differently typed numbers and arrays; the typed
// accessors normalize through these.

func asString(value interface{}) string {
	s, _ := value.(string)
	return s
}

func asBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

func asInt(value interface{}) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func asSlice(value interface{}) ([]interface{}, bool) {
	switch v := value.(type) {
	case []interface{}:
		return v, true
	case []map[string]interface{}:
		generic := make([]interface{}, len(v))
		for i, item := range v {
			generic[i] = item
		}
		return generic, true
	default:
		return nil, false
	}
}

func asInt64Text(text string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	return n
}

func asFloatText(text string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(text), 64)
	return f
}
