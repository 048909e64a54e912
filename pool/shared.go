// File: pool/shared.go
// License: Apache-2.0

package pool

import "sync/atomic"

// sharedCell is the refcount cell behind a family of shared and weak
// handles. The slot is released exactly once, when refs drops to zero;
// after that the cell is dead and no weak handle can revive it. Cells
// are never reused, so a dead cell stays dead.
type sharedCell[T any] struct {
	owner slotOwner[T]
	ptr   *T
	index int
	refs  atomic.Int64
}

func newSharedCell[T any](owner slotOwner[T], ptr *T, index int) *sharedCell[T] {
	c := &sharedCell[T]{owner: owner, ptr: ptr, index: index}
	c.refs.Store(1)
	return c
}

// acquire adds a strong reference if any still exist. The CAS loop keeps
// a concurrent drop-to-zero from being resurrected.
func (c *sharedCell[T]) acquire() bool {
	for {
		r := c.refs.Load()
		if r == 0 {
			return false
		}
		if c.refs.CompareAndSwap(r, r+1) {
			return true
		}
	}
}

func (c *sharedCell[T]) drop() {
	if r := c.refs.Add(-1); r == 0 {
		c.owner.releaseSlot(c.index)
	} else if r < 0 {
		panic("pool: shared refcount below zero")
	}
}

// SharedHandle is co-ownership of one pooled slot. Clones share a
// refcount; the slot returns to the pool when the last clone releases.
// Cloning, releasing and upgrading are safe across goroutines when the
// issuing pool is thread-safe; access to the value itself is the
// callers' to coordinate.
type SharedHandle[T any] struct {
	cell     *sharedCell[T]
	released atomic.Bool
}

// Get returns the stable pointer to the pooled value.
func (h *SharedHandle[T]) Get() *T {
	h.check()
	return h.cell.ptr
}

// Value returns a copy of the pooled value.
func (h *SharedHandle[T]) Value() T {
	h.check()
	return *h.cell.ptr
}

// Index returns the slot index.
func (h *SharedHandle[T]) Index() int {
	h.check()
	return h.cell.index
}

// Refs returns the current strong reference count.
func (h *SharedHandle[T]) Refs() int64 {
	h.check()
	return h.cell.refs.Load()
}

// Clone adds a strong reference and returns a new handle for it.
func (h *SharedHandle[T]) Clone() *SharedHandle[T] {
	h.check()
	if !h.cell.acquire() {
		panic("pool: clone of a dead shared handle")
	}
	return &SharedHandle[T]{cell: h.cell}
}

// Release drops this handle's strong reference. The slot is freed when
// the count reaches zero. Releasing the same handle twice panics.
func (h *SharedHandle[T]) Release() {
	if h.released.Swap(true) {
		panic("pool: use of released handle")
	}
	h.cell.drop()
}

// Downgrade returns a weak handle observing the same slot. The weak
// handle does not keep the slot alive.
func (h *SharedHandle[T]) Downgrade() *WeakHandle[T] {
	h.check()
	return &WeakHandle[T]{cell: h.cell}
}

func (h *SharedHandle[T]) check() {
	if h.released.Load() {
		panic("pool: use of released handle")
	}
}

// WeakHandle observes a shared slot without owning it. It is a value
// that can outlive every strong reference; the only operation is the
// attempt to take a strong reference back.
type WeakHandle[T any] struct {
	cell *sharedCell[T]
}

// Upgrade returns a new strong handle if any strong references still
// exist, reporting failure once the slot has returned to the pool.
func (w *WeakHandle[T]) Upgrade() (*SharedHandle[T], bool) {
	if !w.cell.acquire() {
		return nil, false
	}
	return &SharedHandle[T]{cell: w.cell}, true
}
