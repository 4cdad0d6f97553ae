package collections

import "go.llib.dev/frameless/pkg/errorkit"

// Sentinel errors returned by container and Dictionary operations.
//
// Call sites wrap them with detail through [errorkit.Error.F], so test for
// them with errors.Is rather than ==.
const (
	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1],
	// or when a cursor is advanced past the last element.
	ErrIndexOutOfRange errorkit.Error = "collections: index out of range"

	// ErrEmptyContainer is returned by Pop, Dequeue and Peek when the
	// container holds no elements.
	ErrEmptyContainer errorkit.Error = "collections: operation on empty container"

	// ErrDuplicateKey is returned by Dictionary.AddItem when the key is
	// already present. The dictionary is left unchanged.
	ErrDuplicateKey errorkit.Error = "collections: key already exists"
)
