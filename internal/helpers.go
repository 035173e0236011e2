package internal

import (
	"reflect"
	"strconv"
)

// Scalar is the set of kinds Query can decode into.
type Scalar interface {
	~string | ~int | ~int64 | ~float64 | ~bool
}

// ContextValue returns the value stored under key by c.Set, or the zero value of T.
func ContextValue[T any](c Context, key any) T {
	v, _ := c.Get(key).(T)
	return v
}

// Query decodes a query parameter into T. Missing or malformed values yield the zero value.
func Query[T Scalar](c Context, name string) T {
	v, _ := parseScalar[T](c.Query(name))
	return v
}

// QueryDefault is Query with a fallback for missing or malformed values.
func QueryDefault[T Scalar](c Context, name string, fallback T) T {
	if v, ok := parseScalar[T](c.Query(name)); ok {
		return v
	}
	return fallback
}

// parseScalar works on the underlying kind, so named types like `type Step int` decode too.
func parseScalar[T Scalar](raw string) (T, bool) {
	var out T
	if raw == "" {
		return out, false
	}

	rv := reflect.ValueOf(&out).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, rv.Type().Bits())
		if err != nil {
			return out, false
		}
		rv.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return out, false
		}
		rv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return out, false
		}
		rv.SetBool(b)
	default:
		return out, false
	}
	return out, true
}
