// Package collections provides small in-memory ordered containers (List,
// Stack, Queue) and an insertion-ordered Dictionary, all sharing one query
// and aggregation surface.
//
// # Overview
//
// Every container owns a backing slice and a cursor. The query operators
// (Where, OrderBy, FirstOrDefault, Any, Sum, Max, …) are written once on the
// generic [Query] type, drive the cursor through one full traversal, and are
// embedded by each variant:
//
//	people := collections.ListOf(
//	    Person{Name: "Ada", Age: 36},
//	    Person{Name: "Alan", Age: 41},
//	    Person{Name: "Grace", Age: 0},
//	)
//	adults := people.Where(func(p Person) bool { return p.Age >= 18 })
//	oldest, _ := people.Max(collections.Numeric(func(p Person) int { return p.Age }))
//	people.OrderBy(func(p Person) any { return p.Name }, collections.Descending)
//
// # Eager, in-place semantics
//
// Nothing is deferred. Operators that produce a new set of elements (Where,
// [Convert], Dictionary.GetKeys) allocate a new List and return it; operators
// that reorder or rewrite (OrderBy, ForEachAlter) mutate the receiver's
// backing slice and return the receiver. ToArray exposes that slice by
// reference.
//
// # Selectors
//
// Sorting and numeric reductions read a value off each element through a
// caller-supplied accessor: a [KeySelector] for OrderBy and a
// [NumberSelector] for Sum, Avg, Max and Min. A NumberSelector may reject an
// element (missing field, non-numeric value); rejected elements are skipped.
// For map-shaped records see the sibling package field.
//
// # Errors
//
// Index and empty-container violations return [ErrIndexOutOfRange] and
// [ErrEmptyContainer]; inserting an existing key into a [Dictionary] returns
// [ErrDuplicateKey]. Lookups that may legitimately find nothing
// (FirstOrDefault, LastOrDefault, Dictionary.GetByKey, Max, Min) return a
// zero value and false instead of an error.
//
// # Concurrency
//
// Containers are meant for a single caller. They hold mutable cursor state
// and take no locks; do not share one across goroutines, and do not call a
// query operator on a container from inside another operator's callback on
// the same container.
package collections
