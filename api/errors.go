// File: api/errors.go
// License: Apache-2.0
//
// Error taxonomy of the library. Recoverable conditions are returned as
// typed errors carrying the fields callers need for fallback decisions;
// programming-contract violations (double release, reservation failure
// after growth, confinement breaches) panic instead, because they indicate
// allocator state that is unsafe to keep operating on.

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching. The typed errors below unwrap
// to these.
var (
	ErrPoolExhausted    = errors.New("pool exhausted")
	ErrMaxCapacity      = errors.New("max capacity exceeded")
	ErrInvalidCapacity  = errors.New("capacity must be at least 1")
	ErrInvalidAlignment = errors.New("alignment must be a power of two")
	ErrInvalidConfig    = errors.New("invalid pool configuration")
)

// ExhaustedError reports that a pool has no free slot and cannot (or will
// not) grow. Recoverable: the failed call leaves the pool unchanged.
type ExhaustedError struct {
	Capacity  int
	Allocated int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("pool exhausted: %d/%d slots allocated", e.Allocated, e.Capacity)
}

func (e *ExhaustedError) Unwrap() error { return ErrPoolExhausted }

// CapacityError reports that a growth step would push the pool past its
// configured ceiling. Recoverable: capacity stays at Current.
type CapacityError struct {
	Current   int
	Requested int
	Max       int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("max capacity exceeded: current=%d requested=%d max=%d",
		e.Current, e.Requested, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrMaxCapacity }

// AlignmentError reports an alignment that is not a power of two or is
// below the element type's natural alignment. Construction-time only.
type AlignmentError struct {
	Alignment int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("invalid alignment %d: must be a power of two at least the element's natural alignment", e.Alignment)
}

func (e *AlignmentError) Unwrap() error { return ErrInvalidAlignment }
