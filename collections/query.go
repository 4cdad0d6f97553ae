package collections

import (
	"math"
	"sort"
)

// Query is the query and aggregation surface shared by [List], [Stack] and
// [Queue].
//
// T is the element type; C is the concrete container embedding the Query,
// so that chainable operators (ForEachRead, ForEachAlter, OrderBy) hand back
// the caller's own variant. Every operator is written once, against the
// container's cursor, and runs eagerly: one traversal, O(n) in Count.
//
// Query is not safe for concurrent use, and operators must not be nested on
// the same container (for example calling Any on a list from inside its own
// ForEachRead callback), because they share a single cursor.
type Query[T any, C any] struct {
	cur  *cursor[T]
	self C
}

func newQuery[T any, C any](items []T, self C) Query[T, C] {
	return Query[T, C]{cur: newCursor(items), self: self}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns the backing slice itself, not a copy. Writes through it are
// visible to the container, and later appends may detach it.
func (q *Query[T, C]) ToArray() []T { return q.cur.items }

// Count returns the number of elements.
func (q *Query[T, C]) Count() int { return len(q.cur.items) }

// IsEmpty reports whether the container holds no elements.
func (q *Query[T, C]) IsEmpty() bool { return len(q.cur.items) == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element in order.
func (q *Query[T, C]) Each(fn func(T, int)) {
	q.cur.traverse(func(item T, i int) bool {
		fn(item, i)
		return true
	})
}

// ForEachRead calls visit(item, index) for every element and returns the
// container unchanged.
func (q *Query[T, C]) ForEachRead(visit func(T, int)) C {
	q.Each(visit)
	return q.self
}

// ForEachAlter replaces every element with transform(item, index), in place,
// and returns the container.
func (q *Query[T, C]) ForEachAlter(transform func(T, int) T) C {
	q.cur.traverse(func(item T, i int) bool {
		q.cur.set(transform(item, i))
		return true
	})
	return q.self
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering & ordering
// ─────────────────────────────────────────────────────────────────────────────

// Where returns a new List holding, in order, every element for which pred
// returns true. The container itself is not modified.
func (q *Query[T, C]) Where(pred func(T) bool) *List[T] {
	out := make([]T, 0)
	q.Each(func(item T, _ int) {
		if pred(item) {
			out = append(out, item)
		}
	})
	return NewList(out)
}

// OrderBy sorts the container in place by the value key returns for each
// element and returns the container.
//
// Numbers compare numerically, strings lexicographically and time.Time
// chronologically. Keys of different kinds are grouped: numbers first, then
// strings, then times, in either direction. Keys with no order (nil, NaN,
// booleans, records) go last and keep their relative order. The sort is
// stable.
func (q *Query[T, C]) OrderBy(key KeySelector[T], dir Direction) C {
	items := q.cur.items
	keys := make([]orderKey, len(items))
	q.Each(func(item T, i int) { keys[i] = keyOf(key(item)) })
	sort.Stable(&byKey[T]{items: items, keys: keys, dir: dir})
	return q.self
}

type byKey[T any] struct {
	items []T
	keys  []orderKey
	dir   Direction
}

func (s *byKey[T]) Len() int { return len(s.items) }

func (s *byKey[T]) Less(i, j int) bool {
	a, b := s.keys[i], s.keys[j]
	if a.group != b.group {
		return a.group < b.group
	}
	if s.dir == Descending {
		return a.within(b) > 0
	}
	return a.within(b) < 0
}

func (s *byKey[T]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// FirstOrDefault returns the first element satisfying pred.
// Returns the zero value and false when nothing matches.
func (q *Query[T, C]) FirstOrDefault(pred func(T) bool) (T, bool) {
	var (
		found   T
		matched bool
	)
	q.cur.traverse(func(item T, _ int) bool {
		if pred(item) {
			found, matched = item, true
			return false
		}
		return true
	})
	return found, matched
}

// LastOrDefault returns the last element, in current order, satisfying pred.
// Returns the zero value and false when nothing matches.
func (q *Query[T, C]) LastOrDefault(pred func(T) bool) (T, bool) {
	var (
		found   T
		matched bool
	)
	q.Each(func(item T, _ int) {
		if pred(item) {
			found, matched = item, true
		}
	})
	return found, matched
}

// Any reports whether at least one element satisfies pred.
func (q *Query[T, C]) Any(pred func(T) bool) bool {
	_, ok := q.FirstOrDefault(pred)
	return ok
}

// None reports whether no element satisfies pred. It is the complement of
// [Query.Any].
func (q *Query[T, C]) None(pred func(T) bool) bool { return !q.Any(pred) }

// All reports whether every element satisfies pred. It is true for an empty
// container.
func (q *Query[T, C]) All(pred func(T) bool) bool {
	return !q.Any(func(item T) bool { return !pred(item) })
}

// indexOf returns the position of the first element satisfying pred, or -1.
func (q *Query[T, C]) indexOf(pred func(T) bool) int {
	index := -1
	q.cur.traverse(func(item T, i int) bool {
		if pred(item) {
			index = i
			return false
		}
		return true
	})
	return index
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the values sel reads. Elements sel rejects are skipped, not
// counted as zero.
func (q *Query[T, C]) Sum(sel NumberSelector[T]) float64 {
	var total float64
	q.Each(func(item T, _ int) {
		if v, ok := sel.read(item); ok {
			total += v
		}
	})
	return total
}

// Avg divides the Sum of the qualifying values by the total element count,
// so elements sel rejects still weigh in the denominator. An empty container
// yields NaN.
func (q *Query[T, C]) Avg(sel NumberSelector[T]) float64 {
	if q.IsEmpty() {
		return math.NaN()
	}
	return q.Sum(sel) / float64(q.Count())
}

// Max returns the largest value sel reads.
// Returns false when no element qualifies.
func (q *Query[T, C]) Max(sel NumberSelector[T]) (float64, bool) {
	return q.extreme(sel, func(v, best float64) bool { return v > best })
}

// Min returns the smallest value sel reads.
// Returns false when no element qualifies.
func (q *Query[T, C]) Min(sel NumberSelector[T]) (float64, bool) {
	return q.extreme(sel, func(v, best float64) bool { return v < best })
}

func (q *Query[T, C]) extreme(sel NumberSelector[T], better func(v, best float64) bool) (float64, bool) {
	var (
		best float64
		seen bool
	)
	q.Each(func(item T, _ int) {
		v, ok := sel.read(item)
		if !ok {
			return
		}
		if !seen || better(v, best) {
			best, seen = v, true
		}
	})
	return best, seen
}
