package collections

import "fmt"

// Entry is an immutable key/value pair held by a [Dictionary].
type Entry[K comparable, V any] struct {
	key   K
	value V
}

// NewEntry pairs key with value.
func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// Key returns the entry's key.
func (e Entry[K, V]) Key() K { return e.key }

// Value returns the entry's value.
func (e Entry[K, V]) Value() V { return e.value }

// String returns a human-readable representation: "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.key, e.value)
}
