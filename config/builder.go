// File: config/builder.go
// License: Apache-2.0

package config

import "github.com/TIVerse/fastalloc/api"

// Builder constructs a validated Config step by step.
//
//	cfg, err := config.NewBuilder[Particle]().
//		Capacity(1024).
//		MaxCapacity(1 << 16).
//		Growth(config.Exponential{Factor: 2}).
//		Alignment(64).
//		Build()
type Builder[T any] struct {
	cfg Config[T]
}

// NewBuilder returns a builder with all defaults.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Capacity sets the initial slot count. Required.
func (b *Builder[T]) Capacity(n int) *Builder[T] {
	b.cfg.Capacity = n
	return b
}

// MaxCapacity caps growth; 0 means unbounded.
func (b *Builder[T]) MaxCapacity(n int) *Builder[T] {
	b.cfg.MaxCapacity = n
	return b
}

// Growth sets the growth policy for growable pools.
func (b *Builder[T]) Growth(g Growth) *Builder[T] {
	b.cfg.Growth = g
	return b
}

// Strategy picks the slot-index allocator.
func (b *Builder[T]) Strategy(s Strategy) *Builder[T] {
	b.cfg.Strategy = s
	return b
}

// Alignment forces chunk bases onto the given power-of-two boundary.
func (b *Builder[T]) Alignment(n int) *Builder[T] {
	b.cfg.Alignment = n
	return b
}

// PreInitialize constructs every initial slot with the NewFunc at pool
// build time.
func (b *Builder[T]) PreInitialize(on bool) *Builder[T] {
	b.cfg.PreInitialize = on
	return b
}

// New sets the default-value constructor.
func (b *Builder[T]) New(fn func() T) *Builder[T] {
	b.cfg.NewFunc = fn
	return b
}

// Reset sets the function applied to a slot's value on release instead of
// zeroing it.
func (b *Builder[T]) Reset(fn func(*T)) *Builder[T] {
	b.cfg.ResetFunc = fn
	return b
}

// Sink attaches a statistics sink.
func (b *Builder[T]) Sink(s api.Sink) *Builder[T] {
	b.cfg.Sink = s
	return b
}

// Build validates and returns the configuration.
func (b *Builder[T]) Build() (Config[T], error) {
	cfg := b.cfg
	if err := cfg.Validate(); err != nil {
		return Config[T]{}, err
	}
	return cfg, nil
}
