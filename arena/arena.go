// Package arena provides a small append-only store that issues stable
// integer ids.  The lowered representation of a program keeps all of its
// pieces in arenas and refers between them by id, which keeps the data
// flat, cheap to copy around, and trivially comparable in tests.
package arena

// Arena is an append-only slice of values addressed by index.
type Arena[T any] struct {
	items []T
}

// Alloc appends a value and returns its id.
func (a *Arena[T]) Alloc(v T) uint32 {
	a.items = append(a.items, v)
	return uint32(len(a.items) - 1)
}

// At returns the value with the given id.
func (a *Arena[T]) At(id uint32) T {
	return a.items[id]
}

// Set replaces the value with the given id.  It exists for two-phase
// construction, where slots are allocated up front and filled in later;
// settled values are never mutated.
func (a *Arena[T]) Set(id uint32, v T) {
	a.items[id] = v
}

// Len returns the number of allocated values.
func (a *Arena[T]) Len() int {
	return len(a.items)
}
