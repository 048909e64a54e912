// File: pool/threadsafe.go
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/config"
)

// ThreadSafePool serializes a growing core behind a mutex. Allocate and
// Release are linearized; the slot pointer is resolved under the lock and
// cached in the handle, so reading or writing the pooled value never
// contends with other goroutines. No user code runs while the lock is
// held.
type ThreadSafePool[T any] struct {
	mu    sync.Mutex
	inner *GrowingPool[T]
}

var _ api.Pool = (*ThreadSafePool[int])(nil)

// NewThreadSafe creates a ThreadSafePool doubling on exhaustion.
// maxCapacity 0 means unbounded.
func NewThreadSafe[T any](capacity, maxCapacity int) (*ThreadSafePool[T], error) {
	return NewThreadSafeWithConfig(config.Config[T]{
		Capacity:    capacity,
		MaxCapacity: maxCapacity,
		Growth:      config.Exponential{Factor: 2},
	})
}

// NewThreadSafeWithConfig creates a ThreadSafePool from a full
// configuration. The configured sink must be safe for concurrent use.
func NewThreadSafeWithConfig[T any](cfg config.Config[T]) (*ThreadSafePool[T], error) {
	inner, err := NewGrowingWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &ThreadSafePool[T]{inner: inner}, nil
}

// Allocate stores v in a free slot, growing if necessary. Safe to call
// from any goroutine.
func (p *ThreadSafePool[T]) Allocate(v T) (*Handle[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.allocateGrowing(v, p)
}

// TryAllocate allocates only from present capacity; it never grows.
func (p *ThreadSafePool[T]) TryAllocate(v T) (*Handle[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.allocate(v, p)
}

// AllocateDefault allocates a slot holding the configured default value.
func (p *ThreadSafePool[T]) AllocateDefault() (*Handle[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.allocateGrowing(p.inner.defaultValue(), p)
}

// releaseSlot re-enters the lock; handles minted by this pool point here
// rather than at the inner core.
func (p *ThreadSafePool[T]) releaseSlot(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inner.release(index)
}

// Available returns the number of free slots at present capacity.
func (p *ThreadSafePool[T]) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.available()
}

// Capacity returns the current slot count.
func (p *ThreadSafePool[T]) Capacity() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.capacity()
}

// Allocated returns the number of live slots.
func (p *ThreadSafePool[T]) Allocated() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.allocated()
}

// CanGrow reports whether the next exhaustion could be absorbed by
// growth.
func (p *ThreadSafePool[T]) CanGrow() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.CanGrow()
}

// Stats returns a point-in-time snapshot.
func (p *ThreadSafePool[T]) Stats() api.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner.stats()
}

// Close frees slab-backed storage. All handles must be released first.
func (p *ThreadSafePool[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inner.close()
}
