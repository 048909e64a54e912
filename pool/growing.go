// File: pool/growing.go
// License: Apache-2.0

package pool

import (
	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/config"
)

// GrowingPool adds chunks on exhaustion according to its growth policy,
// up to an optional ceiling. Existing slots never move, so handles and
// pointers stay valid across growth. Not safe for concurrent use;
// overlapping calls panic.
type GrowingPool[T any] struct {
	core[T]
	growth config.Growth
	max    int
	guard  accessGuard
}

var _ api.Pool = (*GrowingPool[int])(nil)

// NewGrowing creates a GrowingPool doubling on exhaustion. maxCapacity 0
// means unbounded.
func NewGrowing[T any](capacity, maxCapacity int) (*GrowingPool[T], error) {
	return NewGrowingWithConfig(config.Config[T]{
		Capacity:    capacity,
		MaxCapacity: maxCapacity,
		Growth:      config.Exponential{Factor: 2},
	})
}

// NewGrowingWithConfig creates a GrowingPool from a full configuration.
// A nil growth policy means the pool never grows and behaves like a
// FixedPool with free-list reuse order.
func NewGrowingWithConfig[T any](cfg config.Config[T]) (*GrowingPool[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &GrowingPool[T]{
		core:   newCore(cfg, newAllocator(cfg.Strategy, config.StrategyFreeList, cfg.Capacity)),
		growth: cfg.GrowthOrNone(),
		max:    cfg.MaxCapacity,
	}, nil
}

// Allocate stores v in a free slot, growing the pool first if it is
// exhausted. Exhaustion with no growth configured returns an
// ExhaustedError; a growth attempt past the ceiling returns a
// CapacityError. Either way a failed call leaves the pool unchanged.
func (p *GrowingPool[T]) Allocate(v T) (*Handle[T], error) {
	p.guard.enter()
	defer p.guard.exit()
	return p.allocateGrowing(v, p)
}

// TryAllocate allocates only from present capacity; it never grows.
func (p *GrowingPool[T]) TryAllocate(v T) (*Handle[T], bool) {
	p.guard.enter()
	defer p.guard.exit()
	return p.allocate(v, p)
}

// AllocateDefault allocates a slot holding the configured default value,
// growing if necessary.
func (p *GrowingPool[T]) AllocateDefault() (*Handle[T], error) {
	return p.Allocate(p.defaultValue())
}

// allocateGrowing is the growth loop shared with ThreadSafePool, which
// calls it under its own lock with itself as the handle owner.
func (p *GrowingPool[T]) allocateGrowing(v T, owner slotOwner[T]) (*Handle[T], error) {
	if h, ok := p.allocate(v, owner); ok {
		return h, nil
	}
	if err := p.grow(); err != nil {
		return nil, err
	}
	h, ok := p.allocate(v, owner)
	if !ok {
		panic("pool: no free slot after successful growth")
	}
	return h, nil
}

// grow extends storage and allocator by one chunk, all or nothing. The
// failed reservation that got us here already recorded the failure.
func (p *GrowingPool[T]) grow() error {
	current := p.capacity()
	amount := p.growth.Amount(current)
	if amount <= 0 {
		return &api.ExhaustedError{Capacity: current, Allocated: p.allocated()}
	}
	if p.max != 0 && current+amount > p.max {
		return &api.CapacityError{Current: current, Requested: current + amount, Max: p.max}
	}
	p.slots.Grow(amount)
	p.alloc.Extend(amount)
	if p.cfg.PreInitialize {
		for i := current; i < current+amount; i++ {
			*p.slots.At(i) = p.cfg.NewFunc()
		}
	}
	p.recordGrowth(current + amount)
	return nil
}

// CanGrow reports whether the next exhaustion could be absorbed by
// growth under the current policy and ceiling.
func (p *GrowingPool[T]) CanGrow() bool {
	current := p.capacity()
	amount := p.growth.Amount(current)
	if amount <= 0 {
		return false
	}
	return p.max == 0 || current+amount <= p.max
}

func (p *GrowingPool[T]) releaseSlot(index int) {
	p.guard.enter()
	defer p.guard.exit()
	p.release(index)
}

// Available returns the number of free slots at present capacity.
func (p *GrowingPool[T]) Available() int { return p.available() }

// Capacity returns the current slot count across all chunks.
func (p *GrowingPool[T]) Capacity() int { return p.capacity() }

// Allocated returns the number of live slots.
func (p *GrowingPool[T]) Allocated() int { return p.allocated() }

// Full reports whether present capacity is exhausted. A full pool may
// still accept allocations through growth.
func (p *GrowingPool[T]) Full() bool { return p.available() == 0 }

// Empty reports whether no slot is live.
func (p *GrowingPool[T]) Empty() bool { return p.allocated() == 0 }

// MaxCapacity returns the growth ceiling, 0 meaning unbounded.
func (p *GrowingPool[T]) MaxCapacity() int { return p.max }

// Stats returns a point-in-time snapshot.
func (p *GrowingPool[T]) Stats() api.Snapshot { return p.stats() }

// Close frees slab-backed storage. All handles must be released first.
func (p *GrowingPool[T]) Close() { p.close() }
