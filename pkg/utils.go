package pkg

import (
	"encoding/json"
	"math"
)

func Filter[T any](items []T, predicate func(T) bool) []T {
	filtered := []T{}
	for _, item := range items {
		if predicate(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Converts a value suspected to be either an int or float64 to an int.
// JSON decoding gives float64 or json.Number for every number so this is needed wherever IDs are read.
func NumToInt(num any) int {
	switch num := num.(type) {
	case int:
		return num
	case int64:
		return int(num)
	case float64:
		return int(num)
	case json.Number:
		if i, err := num.Int64(); err == nil {
			return int(i)
		}
		f, _ := num.Float64()
		return int(f)
	}
	return 0
}

// NormalizeNumber turns whole JSON numbers into int and leaves every other value alone.
func NormalizeNumber(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		if f, err := v.Float64(); err == nil {
			return NormalizeNumber(f)
		}
		return v.String()
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) && v >= math.MinInt64 && v <= math.MaxInt64 {
			return int(v)
		}
		return v
	}
	return v
}
