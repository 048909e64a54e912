// File: pool/fixed.go
// License: Apache-2.0

package pool

import (
	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/config"
)

// FixedPool is a pool with a capacity set once at construction. Slots are
// reused in LIFO order, so a tight allocate/release loop keeps hitting
// cache-warm memory. Not safe for concurrent use; overlapping calls
// panic.
type FixedPool[T any] struct {
	core[T]
	guard accessGuard
}

var _ api.Pool = (*FixedPool[int])(nil)

// New creates a FixedPool with the given capacity and default config.
func New[T any](capacity int) (*FixedPool[T], error) {
	return NewWithConfig(config.Config[T]{Capacity: capacity})
}

// NewWithConfig creates a FixedPool from a full configuration. Growth
// settings are ignored; the capacity is final.
func NewWithConfig[T any](cfg config.Config[T]) (*FixedPool[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FixedPool[T]{
		core: newCore(cfg, newAllocator(cfg.Strategy, config.StrategyStack, cfg.Capacity)),
	}, nil
}

// Allocate stores v in a free slot and returns its handle. When the pool
// is exhausted it returns an ExhaustedError and mutates nothing.
func (p *FixedPool[T]) Allocate(v T) (*Handle[T], error) {
	p.guard.enter()
	defer p.guard.exit()

	h, ok := p.allocate(v, p)
	if !ok {
		return nil, &api.ExhaustedError{Capacity: p.capacity(), Allocated: p.allocated()}
	}
	return h, nil
}

// TryAllocate is Allocate with a boolean instead of an error, for callers
// that probe for space on a hot path.
func (p *FixedPool[T]) TryAllocate(v T) (*Handle[T], bool) {
	p.guard.enter()
	defer p.guard.exit()
	return p.allocate(v, p)
}

// AllocateDefault allocates a slot holding the configured default value,
// or the zero value when no constructor is configured.
func (p *FixedPool[T]) AllocateDefault() (*Handle[T], error) {
	return p.Allocate(p.defaultValue())
}

// AllocateBatch allocates one slot per value, all or nothing: if the pool
// cannot hold the whole batch it returns an ExhaustedError and no slots
// change state.
func (p *FixedPool[T]) AllocateBatch(vs []T) ([]*Handle[T], error) {
	p.guard.enter()
	defer p.guard.exit()

	if len(vs) > p.available() {
		p.recordFailure()
		return nil, &api.ExhaustedError{Capacity: p.capacity(), Allocated: p.allocated()}
	}
	handles := make([]*Handle[T], len(vs))
	for i, v := range vs {
		h, ok := p.allocate(v, p)
		if !ok {
			panic("pool: batch reservation failed after a capacity check")
		}
		handles[i] = h
	}
	return handles, nil
}

func (p *FixedPool[T]) releaseSlot(index int) {
	p.guard.enter()
	defer p.guard.exit()
	p.release(index)
}

// Available returns the number of free slots.
func (p *FixedPool[T]) Available() int { return p.available() }

// Capacity returns the total slot count.
func (p *FixedPool[T]) Capacity() int { return p.capacity() }

// Allocated returns the number of live slots.
func (p *FixedPool[T]) Allocated() int { return p.allocated() }

// Full reports whether every slot is live.
func (p *FixedPool[T]) Full() bool { return p.available() == 0 }

// Empty reports whether no slot is live.
func (p *FixedPool[T]) Empty() bool { return p.allocated() == 0 }

// Stats returns a point-in-time snapshot. With no sink configured only
// the live counters are populated.
func (p *FixedPool[T]) Stats() api.Snapshot { return p.stats() }

// Close frees slab-backed storage. All handles must be released first.
func (p *FixedPool[T]) Close() { p.close() }
