// Package field decides whether a loosely-typed record value counts as
// "filled". The rules are deliberately asymmetric: 0 and false are real
// answers and count as present, while "", empty lists, and empty maps do not.
// Completeness scoring depends on this exact behavior (a legitimately-zero
// rating is complete data).
package field

import (
	"math"
	"reflect"
	"strings"
)

// Filled reports whether v holds a usable value.
func Filled(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case bool:
		return true
	case float64:
		return !math.IsNaN(val)
	case float32:
		return !math.IsNaN(float64(val))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case []any:
		return sliceFilled(val)
	case []string:
		for _, s := range val {
			if strings.TrimSpace(s) != "" {
				return true
			}
		}
		return false
	case map[string]any:
		return len(val) > 0
	}

	// Scraped JSON only produces the cases above, but records are open maps
	// and callers may hand us richer Go values.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if Filled(rv.Index(i).Interface()) {
				return true
			}
		}
		return false
	case reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return Filled(rv.Elem().Interface())
	}

	return true
}

// FilledIn reports whether the named field of the record map is filled.
// Missing keys are simply not filled, never an error.
func FilledIn(record map[string]any, name string) bool {
	if record == nil {
		return false
	}
	return Filled(record[name])
}

func sliceFilled(vals []any) bool {
	for _, v := range vals {
		if Filled(v) {
			return true
		}
	}
	return false
}
