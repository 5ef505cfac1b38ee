package table

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// compareValues ordena según el tipo subyacente: texto lexicográfico, números por valor,
// fechas cronológicamente. nil va primero; tipos mezclados se comparan como texto.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isString(va) && isString(vb):
		return strings.Compare(va.String(), vb.String())
	case isNumber(va) && isNumber(vb):
		return cmp.Compare(toFloat(va), toFloat(vb))
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmp.Compare(boolRank(va.Bool()), boolRank(vb.Bool()))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// matches es la búsqueda de subcadena sin distinguir mayúsculas
func matches(value any, query string) bool {
	if value == nil {
		return false
	}
	return strings.Contains(strings.ToLower(fmt.Sprint(value)), strings.ToLower(query))
}

func isString(v reflect.Value) bool {
	return v.Kind() == reflect.String
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
