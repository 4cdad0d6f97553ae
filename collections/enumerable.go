package collections

// Enumerable is the part of the query surface that does not depend on the
// concrete container type. [List], [Stack] and [Queue] all satisfy it.
//
// Accept Enumerable in your own functions when they only need to read or
// aggregate, so callers can hand in any variant.
type Enumerable[T any] interface {
	// ToArray returns the backing slice by reference.
	ToArray() []T

	// Count returns the number of elements.
	Count() int

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// Each calls fn(item, index) for every element in order.
	Each(fn func(T, int))

	// Where returns a new List with the elements matching pred.
	Where(pred func(T) bool) *List[T]

	// FirstOrDefault returns the first match, or the zero value and false.
	FirstOrDefault(pred func(T) bool) (T, bool)

	// LastOrDefault returns the last match, or the zero value and false.
	LastOrDefault(pred func(T) bool) (T, bool)

	Any(pred func(T) bool) bool
	None(pred func(T) bool) bool
	All(pred func(T) bool) bool

	Sum(sel NumberSelector[T]) float64
	Avg(sel NumberSelector[T]) float64
	Max(sel NumberSelector[T]) (float64, bool)
	Min(sel NumberSelector[T]) (float64, bool)
}

var (
	_ Enumerable[int] = (*List[int])(nil)
	_ Enumerable[int] = (*Stack[int])(nil)
	_ Enumerable[int] = (*Queue[int])(nil)
)

// Convert applies fn to every element of src, in order, and returns the
// results as a new List. src is not modified.
//
// It is a package-level function because Go methods cannot introduce the
// second type parameter U.
//
//	names := collections.Convert(people, func(p Person) string { return p.Name })
func Convert[T, U any](src Enumerable[T], fn func(T) U) *List[U] {
	out := make([]U, 0, src.Count())
	src.Each(func(item T, _ int) {
		out = append(out, fn(item))
	})
	return NewList(out)
}
