package collections

// Queue is a first-in, first-out container. The front of the queue is the
// first element of the backing slice.
//
// Dequeue shifts the remaining elements down, which is O(n); that is fine
// for the small in-memory sets this package targets.
type Queue[T any] struct {
	Query[T, *Queue[T]]
}

// NewQueue creates a Queue over items, front first. The slice is adopted,
// not copied; a nil slice is an empty queue.
func NewQueue[T any](items []T) *Queue[T] {
	q := &Queue[T]{}
	q.Query = newQuery(items, q)
	return q
}

// QueueOf creates a Queue from a variadic list of items, front first.
func QueueOf[T any](items ...T) *Queue[T] { return NewQueue(items) }

// Enqueue appends item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) {
	q.cur.items = append(q.cur.items, item)
}

// Dequeue removes and returns the front element, or returns
// [ErrEmptyContainer].
func (q *Queue[T]) Dequeue() (T, error) {
	item, err := q.Peek()
	if err != nil {
		return item, err
	}
	items := q.cur.items
	copy(items, items[1:])
	var zero T
	items[len(items)-1] = zero
	q.cur.items = items[:len(items)-1]
	return item, nil
}

// Peek returns the front element without removing it, or returns
// [ErrEmptyContainer].
func (q *Queue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, ErrEmptyContainer.F("queue has no elements")
	}
	return q.cur.items[0], nil
}
