// File: pool/threadlocal.go
// License: Apache-2.0

package pool

import (
	"fmt"
	"runtime"

	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/config"
)

// ThreadLocalPool is a FixedPool confined to the goroutine that created
// it. Every operation, including releasing a handle, verifies the caller
// and panics on access from any other goroutine. Confinement replaces
// the access guard the other single-owner pools carry.
type ThreadLocalPool[T any] struct {
	core[T]
	owner uint64
}

var _ api.Pool = (*ThreadLocalPool[int])(nil)

// NewThreadLocal creates a ThreadLocalPool owned by the calling
// goroutine.
func NewThreadLocal[T any](capacity int) (*ThreadLocalPool[T], error) {
	return NewThreadLocalWithConfig(config.Config[T]{Capacity: capacity})
}

// NewThreadLocalWithConfig creates a ThreadLocalPool from a full
// configuration, owned by the calling goroutine.
func NewThreadLocalWithConfig[T any](cfg config.Config[T]) (*ThreadLocalPool[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ThreadLocalPool[T]{
		core:  newCore(cfg, newAllocator(cfg.Strategy, config.StrategyStack, cfg.Capacity)),
		owner: goroutineID(),
	}, nil
}

// Allocate stores v in a free slot. Exhaustion returns an ExhaustedError.
func (p *ThreadLocalPool[T]) Allocate(v T) (*Handle[T], error) {
	p.confine()
	h, ok := p.allocate(v, p)
	if !ok {
		return nil, &api.ExhaustedError{Capacity: p.capacity(), Allocated: p.allocated()}
	}
	return h, nil
}

// TryAllocate is Allocate with a boolean instead of an error.
func (p *ThreadLocalPool[T]) TryAllocate(v T) (*Handle[T], bool) {
	p.confine()
	return p.allocate(v, p)
}

// AllocateDefault allocates a slot holding the configured default value.
func (p *ThreadLocalPool[T]) AllocateDefault() (*Handle[T], error) {
	return p.Allocate(p.defaultValue())
}

func (p *ThreadLocalPool[T]) releaseSlot(index int) {
	p.confine()
	p.release(index)
}

// Available returns the number of free slots.
func (p *ThreadLocalPool[T]) Available() int { p.confine(); return p.available() }

// Capacity returns the total slot count.
func (p *ThreadLocalPool[T]) Capacity() int { p.confine(); return p.capacity() }

// Allocated returns the number of live slots.
func (p *ThreadLocalPool[T]) Allocated() int { p.confine(); return p.allocated() }

// Stats returns a point-in-time snapshot.
func (p *ThreadLocalPool[T]) Stats() api.Snapshot { p.confine(); return p.stats() }

// Close frees slab-backed storage. All handles must be released first.
func (p *ThreadLocalPool[T]) Close() { p.confine(); p.close() }

func (p *ThreadLocalPool[T]) confine() {
	if id := goroutineID(); id != p.owner {
		panic(fmt.Sprintf(
			"pool: thread-local pool owned by goroutine %d used from goroutine %d",
			p.owner, id))
	}
}

// goroutineID parses the current goroutine's id out of the stack header
// ("goroutine 123 [running]:"). The 32-byte buffer stays on the stack.
func goroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	for _, c := range buf[len("goroutine "):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
