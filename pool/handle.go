// File: pool/handle.go
// License: Apache-2.0

package pool

// slotOwner is the release path back into the pool that issued a handle.
// Wrapper pools (thread-safe, thread-local) implement it themselves so
// releases re-enter through their own synchronization.
type slotOwner[T any] interface {
	releaseSlot(index int)
}

// Handle is exclusive ownership of one pooled slot. The caller that holds
// the handle is the only party allowed to touch the slot's value; Release
// returns the slot to the pool and invalidates the handle.
//
// The slot pointer is resolved once at allocation time, so Get and Set
// never touch pool state and never take a lock, whichever pool variant
// issued the handle.
type Handle[T any] struct {
	owner    slotOwner[T]
	ptr      *T
	index    int
	released bool
}

// Get returns the stable pointer to the pooled value.
func (h *Handle[T]) Get() *T {
	h.check()
	return h.ptr
}

// Value returns a copy of the pooled value.
func (h *Handle[T]) Value() T {
	h.check()
	return *h.ptr
}

// Set overwrites the pooled value.
func (h *Handle[T]) Set(v T) {
	h.check()
	*h.ptr = v
}

// Index returns the slot index, unique among live handles of one pool.
func (h *Handle[T]) Index() int {
	h.check()
	return h.index
}

// Release returns the slot to the pool. The handle is dead afterwards;
// any further use, including a second Release, panics.
func (h *Handle[T]) Release() {
	h.check()
	h.released = true
	owner := h.owner
	h.owner = nil
	h.ptr = nil
	owner.releaseSlot(h.index)
}

// Share converts exclusive ownership into shared ownership with one
// strong reference. The exclusive handle is dead afterwards.
func (h *Handle[T]) Share() *SharedHandle[T] {
	h.check()
	cell := newSharedCell(h.owner, h.ptr, h.index)
	h.released = true
	h.owner = nil
	h.ptr = nil
	return &SharedHandle[T]{cell: cell}
}

func (h *Handle[T]) check() {
	if h.released {
		panic("pool: use of released handle")
	}
}
