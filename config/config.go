// File: config/config.go
// License: Apache-2.0

package config

import (
	"fmt"
	"reflect"

	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/internal/mem"
)

// Config is the validated configuration consumed by pool constructors.
// Zero values mean "default": no ceiling, no growth, natural alignment.
// Build one through Builder, or fill the struct directly and let the pool
// constructor run Validate.
type Config[T any] struct {
	// Capacity is the initial slot count. Required, at least 1.
	Capacity int

	// MaxCapacity caps growth; 0 means unbounded.
	MaxCapacity int

	// Growth is consulted by growable pools on exhaustion. nil means
	// GrowthNone.
	Growth Growth

	// Strategy picks the slot-index allocator. StrategyDefault defers
	// to the pool variant.
	Strategy Strategy

	// Alignment forces chunk bases onto the given boundary. 0 means the
	// element type's natural alignment. Must be a power of two, at least
	// the natural alignment, and requires a pointer-free element type.
	Alignment int

	// PreInitialize constructs every initial slot with NewFunc at pool
	// build time.
	PreInitialize bool

	// NewFunc constructs default values for AllocateDefault and for
	// pre-initialization.
	NewFunc func() T

	// ResetFunc restores a slot's value when it is released. Without one,
	// released slots are zeroed.
	ResetFunc func(*T)

	// Sink receives allocate/release/grow/failure events. nil disables
	// collection.
	Sink api.Sink
}

// Validate checks the configuration. Construction-time failures only;
// a config that validates never produces errors from these fields mid-use.
func (c *Config[T]) Validate() error {
	if c.Capacity < 1 {
		return api.ErrInvalidCapacity
	}
	if c.MaxCapacity != 0 && c.MaxCapacity < c.Capacity {
		return fmt.Errorf("%w: max capacity %d below initial capacity %d",
			api.ErrInvalidConfig, c.MaxCapacity, c.Capacity)
	}
	if c.PreInitialize && c.NewFunc == nil {
		return fmt.Errorf("%w: pre-initialization requires a NewFunc", api.ErrInvalidConfig)
	}
	if c.Alignment != 0 {
		var zero T
		t := reflect.TypeOf(&zero).Elem()
		if !mem.IsPowerOfTwo(c.Alignment) || c.Alignment < t.Align() {
			return &api.AlignmentError{Alignment: c.Alignment}
		}
		if c.Alignment > t.Align() && mem.HasPointers(t) {
			return fmt.Errorf("%w: alignment override requires a pointer-free element type",
				api.ErrInvalidConfig)
		}
	}
	return nil
}

// GrowthOrNone returns the configured policy, defaulting to GrowthNone.
func (c *Config[T]) GrowthOrNone() Growth {
	if c.Growth == nil {
		return GrowthNone
	}
	return c.Growth
}
