package collections

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NumberSelector reads a numeric value off an element.
//
// The boolean reports whether the element carries a usable number; elements
// for which it is false are skipped by Sum, Avg, Max and Min.
type NumberSelector[T any] func(T) (float64, bool)

// KeySelector reads the value OrderBy sorts on.
type KeySelector[T any] func(T) any

// Numeric adapts a typed field accessor into a NumberSelector that accepts
// every element.
//
//	ages := people.Sum(collections.Numeric(func(p Person) int { return p.Age }))
func Numeric[T any, N constraints.Integer | constraints.Float](fn func(T) N) NumberSelector[T] {
	return func(item T) (float64, bool) { return float64(fn(item)), true }
}

func (sel NumberSelector[T]) read(item T) (float64, bool) {
	v, ok := sel(item)
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
