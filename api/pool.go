// File: api/pool.go
// License: Apache-2.0
//
// Abstract pooling APIs shared by all pool variants.

package api

// Pool is the capability surface common to every pool variant.
// Allocation methods live on the concrete pool types because each variant
// returns its own handle discipline; Pool covers the observable state.
type Pool interface {
	// Available returns the number of free slots.
	Available() int

	// Capacity returns the total number of slots across all chunks.
	Capacity() int

	// Allocated returns the number of live slots.
	Allocated() int
}

// Poolable is implemented by element types that want lifecycle hooks.
// Pools invoke the hooks through the slot pointer, so pointer-receiver
// implementations work for value element types.
type Poolable interface {
	// OnAcquire runs after a value has been written into its slot and
	// before the handle is returned to the caller.
	OnAcquire()

	// OnRelease runs right before the slot is reset and returned to the
	// free set.
	OnRelease()
}
