package collections

import (
	"cmp"
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Direction selects the sort order used by OrderBy.
type Direction int

const (
	// Ascending yields a non-decreasing order.
	Ascending Direction = iota
	// Descending yields a non-increasing order.
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Key groups, in the order OrderBy places them. Direction only reverses
// the order inside a group; unordered keys always come last.
const (
	groupNumber = iota
	groupString
	groupTime
	groupUnordered
)

// orderKey is a sort key normalised once per element.
type orderKey struct {
	group int
	num   float64
	str   string
	at    time.Time
}

func keyOf(v any) orderKey {
	if f, ok := toNumber(v); ok {
		return orderKey{group: groupNumber, num: f}
	}
	switch tv := v.(type) {
	case string:
		return orderKey{group: groupString, str: tv}
	case time.Time:
		return orderKey{group: groupTime, at: tv}
	}
	return orderKey{group: groupUnordered}
}

// within compares two keys of the same group.
func (k orderKey) within(o orderKey) int {
	switch k.group {
	case groupNumber:
		switch {
		case k.num < o.num:
			return -1
		case k.num > o.num:
			return 1
		}
	case groupString:
		return strings.Compare(k.str, o.str)
	case groupTime:
		return k.at.Compare(o.at)
	}
	return 0
}

func (k orderKey) compare(o orderKey) int {
	if k.group != o.group {
		return cmp.Compare(k.group, o.group)
	}
	return k.within(o)
}

// compareValues orders two runtime values three-way.
//
// Numbers compare numerically regardless of their concrete Go type, strings
// lexicographically and time.Time chronologically. Numbers sort before
// strings, strings before times. Everything else, including nil and NaN, is
// unordered: equal to each other and after every ordered value.
func compareValues(a, b any) int {
	return keyOf(a).compare(keyOf(b))
}

func toNumber(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil && !math.IsNaN(f)
	}
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// equal reports whether a and b are the same element: == for comparable
// values, deep equality otherwise.
func equal[T any](a, b T) (eq bool) {
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == nil && vb == nil
	}
	if !reflect.TypeOf(va).Comparable() {
		return reflect.DeepEqual(va, vb)
	}
	defer func() {
		// == panics on interface values holding uncomparable dynamic types.
		if recover() != nil {
			eq = reflect.DeepEqual(va, vb)
		}
	}()
	return va == vb
}
