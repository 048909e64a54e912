// File: internal/allocator/allocator.go
// License: Apache-2.0

package allocator

// Allocator tracks the free indices inside a pool's index space.
// Implementations are not safe for concurrent use; the owning pool
// serializes access.
type Allocator interface {
	// Reserve takes a free index out of the set. ok is false when no
	// index is available.
	Reserve() (index int, ok bool)

	// Release returns a live index to the free set. Releasing an index
	// that is already free, or out of range, panics: it means the pool's
	// bookkeeping is corrupted and continuing would hand the same slot to
	// two owners.
	Release(index int)

	// Extend introduces n fresh indices at the top of the index space,
	// all free. Used when a growable pool appends a chunk.
	Extend(n int)

	// Available returns the number of free indices.
	Available() int

	// Capacity returns the size of the index space.
	Capacity() int
}

// Full reports whether no index is available.
func Full(a Allocator) bool { return a.Available() == 0 }

// Empty reports whether every index is free.
func Empty(a Allocator) bool { return a.Available() == a.Capacity() }
