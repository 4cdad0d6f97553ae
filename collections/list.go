package collections

import "slices"

// List is an ordered container with append, removal by value and indexed
// access. It carries the full [Query] surface.
//
//	l := collections.ListOf(3, 1, 2)
//	l.Add(4)
//	l.OrderBy(func(n int) any { return n }, collections.Ascending)
//	l.ToArray() // [1 2 3 4]
type List[T any] struct {
	Query[T, *List[T]]
}

// NewList creates a List over items. The slice is adopted, not copied; a nil
// slice is an empty list.
func NewList[T any](items []T) *List[T] {
	l := &List[T]{}
	l.Query = newQuery(items, l)
	return l
}

// ListOf creates a List from a variadic list of items.
func ListOf[T any](items ...T) *List[T] { return NewList(items) }

// Add appends item to the end of the list.
func (l *List[T]) Add(item T) {
	l.cur.items = append(l.cur.items, item)
}

// Remove deletes the first element equal to item and reports whether one
// was found. When nothing matches the list is left untouched.
//
// Elements are compared with == when their type allows it, and with
// reflect.DeepEqual otherwise.
func (l *List[T]) Remove(item T) bool {
	index := l.indexOf(func(v T) bool { return equal(v, item) })
	if index < 0 {
		return false
	}
	l.cur.items = slices.Delete(l.cur.items, index, index+1)
	return true
}

// GetAtIndex returns the element at index, or [ErrIndexOutOfRange].
func (l *List[T]) GetAtIndex(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return l.cur.items[index], nil
}

// RemoveAtIndex deletes the element at index, or returns
// [ErrIndexOutOfRange] and leaves the list untouched.
func (l *List[T]) RemoveAtIndex(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.cur.items = slices.Delete(l.cur.items, index, index+1)
	return nil
}

func (l *List[T]) checkIndex(index int) error {
	if index < 0 || index >= l.Count() {
		return ErrIndexOutOfRange.F("index %d, count %d", index, l.Count())
	}
	return nil
}
