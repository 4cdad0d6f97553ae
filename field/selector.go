package field

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Value returns a selector reading path, suitable for OrderBy.
// A missing field reads as nil, which OrderBy places after every value it
// can order.
func Value(path string) func(Record) any {
	return func(r Record) any {
		v, _ := Get(r, path)
		return v
	}
}

// Number returns a selector reading path as a float64, suitable for Sum,
// Avg, Max and Min.
//
// Numbers, booleans and numeric strings qualify. Missing fields, nil, NaN
// and values that cannot be read as a number report false.
func Number(path string) func(Record) (float64, bool) {
	return func(r Record) (float64, bool) {
		v, ok := Get(r, path)
		if !ok || v == nil {
			return 0, false
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			return 0, false
		}
		var (
			f   float64
			err error
		)
		if n, isNumber := v.(json.Number); isNumber {
			f, err = n.Float64()
		} else {
			f, err = cast.ToFloat64E(v)
		}
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
}

// String returns a selector reading path as a string.
// Missing fields, nil and nested records report false.
func String(path string) func(Record) (string, bool) {
	return func(r Record) (string, bool) {
		v, ok := Get(r, path)
		if !ok || v == nil {
			return "", false
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return "", false
		}
		return s, true
	}
}

// Equals returns a predicate matching records whose value at path, read as
// a string, equals want read as a string. 42.0 therefore matches "42".
func Equals(path string, want any) func(Record) bool {
	read := String(path)
	expected, err := cast.ToStringE(want)
	if err != nil {
		expected = fmt.Sprint(want)
	}
	return func(r Record) bool {
		got, ok := read(r)
		return ok && got == expected
	}
}

// ParseMatch splits a "path=value" expression.
func ParseMatch(expr string) (path, value string, err error) {
	path, value, ok := strings.Cut(expr, "=")
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		return "", "", fmt.Errorf("field: invalid match %q, expected path=value", expr)
	}
	return path, value, nil
}
