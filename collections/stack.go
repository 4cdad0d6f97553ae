package collections

// Stack is a last-in, first-out container. The top of the stack is the last
// element of the backing slice, so traversal runs bottom to top.
type Stack[T any] struct {
	Query[T, *Stack[T]]
}

// NewStack creates a Stack over items, whose last element is the top. The
// slice is adopted, not copied; a nil slice is an empty stack.
func NewStack[T any](items []T) *Stack[T] {
	s := &Stack[T]{}
	s.Query = newQuery(items, s)
	return s
}

// StackOf creates a Stack from a variadic list of items, bottom first.
func StackOf[T any](items ...T) *Stack[T] { return NewStack(items) }

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.cur.items = append(s.cur.items, item)
}

// Pop removes and returns the top element, or returns [ErrEmptyContainer].
func (s *Stack[T]) Pop() (T, error) {
	item, err := s.Peek()
	if err != nil {
		return item, err
	}
	last := len(s.cur.items) - 1
	var zero T
	s.cur.items[last] = zero
	s.cur.items = s.cur.items[:last]
	return item, nil
}

// Peek returns the top element without removing it, or returns
// [ErrEmptyContainer].
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyContainer.F("stack has no elements")
	}
	return s.cur.items[len(s.cur.items)-1], nil
}
