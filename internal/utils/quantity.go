package utils

import (
	"encoding/json"
	"strconv"
)

// IndexKey encodes an item index as a quantities-map key.
func IndexKey(index int) string {
	return strconv.Itoa(index)
}

// ParseIndexKey decodes a quantities-map key back into an item index.
// Returns false for name-keyed legacy entries.
func ParseIndexKey(key string) (int, bool) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// ParseQuantity coerces a loosely typed quantity value to a non-negative
// integer. JSON numbers, json.Number, numeric strings and ints are accepted;
// anything else, and anything negative, degrades to 0.
func ParseQuantity(v any) int {
	var n int
	switch q := v.(type) {
	case float64:
		n = int(q)
	case int:
		n = q
	case json.Number:
		i, err := q.Int64()
		if err != nil {
			return 0
		}
		n = int(i)
	case string:
		i, err := strconv.Atoi(q)
		if err != nil {
			return 0
		}
		n = i
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}

// NormalizeQuantities coerces every value of a submitted quantities map,
// dropping nothing: keys are kept as sent so legacy name keys survive.
func NormalizeQuantities(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = ParseQuantity(v)
	}
	return out
}
