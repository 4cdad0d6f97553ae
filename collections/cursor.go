package collections

// cursor is the positional iterator shared by every container variant.
//
// It owns the backing slice so that variant-specific mutations (append,
// splice, pop) and traversals always see the same storage. The position is
// never exposed outside the package; callers interact with the query
// operators instead.
//
// A full traversal is always:
//
//	c.Reset()
//	for c.HasNext() {
//	    item, _ := c.Advance()
//	    // ...
//	}
//
// Only one traversal may be active per container at a time. Calling a query
// operator from inside another operator's callback on the same container
// restarts the position and corrupts the outer traversal.
type cursor[T any] struct {
	items []T
	pos   int
}

func newCursor[T any](items []T) *cursor[T] {
	return &cursor[T]{items: items, pos: -1}
}

// Reset moves the cursor before the first element.
func (c *cursor[T]) Reset() { c.pos = -1 }

// HasNext reports whether an element exists after the current position
// without consuming it.
func (c *cursor[T]) HasNext() bool { return c.pos+1 < len(c.items) }

// Advance moves one step forward and returns the element now under the
// cursor. It returns ErrIndexOutOfRange when no element remains; the
// position is left unchanged in that case.
func (c *cursor[T]) Advance() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, ErrIndexOutOfRange.F("cursor at %d of %d", c.pos, len(c.items))
	}
	c.pos++
	return c.items[c.pos], nil
}

// Position returns the offset of the element last returned by Advance, or -1
// right after Reset.
func (c *cursor[T]) Position() int { return c.pos }

// traverse runs one full traversal, calling visit for every element until it
// returns false.
func (c *cursor[T]) traverse(visit func(item T, index int) bool) {
	c.Reset()
	for c.HasNext() {
		item, err := c.Advance()
		if err != nil {
			return
		}
		if !visit(item, c.Position()) {
			return
		}
	}
}

// set replaces the element at the current position.
func (c *cursor[T]) set(item T) { c.items[c.pos] = item }
