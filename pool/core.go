// File: pool/core.go
// License: Apache-2.0

package pool

import (
	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/config"
	"github.com/TIVerse/fastalloc/internal/allocator"
	"github.com/TIVerse/fastalloc/internal/storage"
)

// snapshotter is satisfied by sinks that can report a point-in-time view,
// notably stats.Collector. Stats falls back to live counters otherwise.
type snapshotter interface {
	Snapshot() api.Snapshot
}

// core is the machinery shared by every pool variant: chunked storage, a
// slot-index allocator, the configured lifecycle callbacks and the stats
// sink. Synchronization is the embedding pool's concern; core methods
// assume the caller already holds whatever guard or lock applies.
type core[T any] struct {
	cfg   config.Config[T]
	slots *storage.Chunked[T]
	alloc allocator.Allocator
}

// newAllocator maps the configured strategy onto an allocator, with the
// pool variant's preference standing in for StrategyDefault.
func newAllocator(s, fallback config.Strategy, capacity int) allocator.Allocator {
	if s == config.StrategyDefault {
		s = fallback
	}
	switch s {
	case config.StrategyFreeList:
		return allocator.NewFreeList(capacity)
	case config.StrategyBitmap:
		return allocator.NewBitmap(capacity)
	default:
		return allocator.NewStack(capacity)
	}
}

func newCore[T any](cfg config.Config[T], alloc allocator.Allocator) core[T] {
	c := core[T]{
		cfg:   cfg,
		slots: storage.New[T](cfg.Capacity, cfg.Alignment),
		alloc: alloc,
	}
	if cfg.PreInitialize {
		for i := 0; i < cfg.Capacity; i++ {
			*c.slots.At(i) = cfg.NewFunc()
		}
	}
	return c
}

// allocate reserves a slot, writes v into it and mints a handle owned by
// owner. A false second return means the allocator is exhausted; nothing
// was mutated.
func (c *core[T]) allocate(v T, owner slotOwner[T]) (*Handle[T], bool) {
	index, ok := c.alloc.Reserve()
	if !ok {
		c.recordFailure()
		return nil, false
	}
	ptr := c.slots.At(index)
	*ptr = v
	if p, ok := any(ptr).(api.Poolable); ok {
		p.OnAcquire()
	}
	c.recordAllocation()
	return &Handle[T]{owner: owner, ptr: ptr, index: index}, true
}

// release runs the element's release hook, restores the slot value and
// returns the index to the allocator. Releasing a free index panics in
// the allocator's guard.
func (c *core[T]) release(index int) {
	ptr := c.slots.At(index)
	if p, ok := any(ptr).(api.Poolable); ok {
		p.OnRelease()
	}
	if c.cfg.ResetFunc != nil {
		c.cfg.ResetFunc(ptr)
	} else {
		var zero T
		*ptr = zero
	}
	c.alloc.Release(index)
	c.recordRelease()
}

// defaultValue is what AllocateDefault writes: the configured constructor
// if there is one, the zero value otherwise.
func (c *core[T]) defaultValue() T {
	if c.cfg.NewFunc != nil {
		return c.cfg.NewFunc()
	}
	var zero T
	return zero
}

func (c *core[T]) available() int { return c.alloc.Available() }
func (c *core[T]) capacity() int  { return c.alloc.Capacity() }
func (c *core[T]) allocated() int { return c.alloc.Capacity() - c.alloc.Available() }

func (c *core[T]) stats() api.Snapshot {
	if s, ok := c.cfg.Sink.(snapshotter); ok {
		snap := s.Snapshot()
		snap.Capacity = c.capacity()
		return snap
	}
	return api.Snapshot{
		CurrentUsage: c.allocated(),
		PeakUsage:    c.allocated(),
		Capacity:     c.capacity(),
	}
}

// close releases slab-backed chunks. Live handles must be released first;
// after close the pool is unusable.
func (c *core[T]) close() {
	c.slots.Free()
}

func (c *core[T]) recordAllocation() {
	if c.cfg.Sink != nil {
		c.cfg.Sink.RecordAllocation()
	}
}

func (c *core[T]) recordRelease() {
	if c.cfg.Sink != nil {
		c.cfg.Sink.RecordRelease()
	}
}

func (c *core[T]) recordFailure() {
	if c.cfg.Sink != nil {
		c.cfg.Sink.RecordFailure()
	}
}

func (c *core[T]) recordGrowth(newCapacity int) {
	if c.cfg.Sink != nil {
		c.cfg.Sink.RecordGrowth(newCapacity)
	}
}
