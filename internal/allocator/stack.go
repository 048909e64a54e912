// File: internal/allocator/stack.go
// License: Apache-2.0
//
// LIFO index allocator. The most recently released index is the next one
// issued, which keeps recently touched slots cache-hot. Backs the fixed
// pool.

package allocator

import "fmt"

// Stack holds the free indices as a LIFO stack.
type Stack struct {
	free     []int
	capacity int
	live     liveBits
}

// NewStack creates a stack allocator with every index free. The stack is
// seeded in reverse so index 0 is issued first.
func NewStack(capacity int) *Stack {
	s := &Stack{
		free:     make([]int, 0, capacity),
		capacity: capacity,
	}
	for i := capacity - 1; i >= 0; i-- {
		s.free = append(s.free, i)
	}
	s.live.grow(capacity)
	return s
}

func (s *Stack) Reserve() (int, bool) {
	n := len(s.free)
	if n == 0 {
		return 0, false
	}
	index := s.free[n-1]
	s.free = s.free[:n-1]
	s.live.markLive(index)
	return index, true
}

func (s *Stack) Release(index int) {
	if index < 0 || index >= s.capacity {
		panic(fmt.Sprintf("allocator: release of out-of-range index %d (capacity %d)", index, s.capacity))
	}
	s.live.markFree(index)
	s.free = append(s.free, index)
}

// Extend pushes the new indices in reverse so the lowest fresh index is
// issued first, matching the initial seeding.
func (s *Stack) Extend(n int) {
	old := s.capacity
	s.capacity += n
	s.live.grow(s.capacity)
	for i := s.capacity - 1; i >= old; i-- {
		s.free = append(s.free, i)
	}
}

func (s *Stack) Available() int { return len(s.free) }

func (s *Stack) Capacity() int { return s.capacity }

var _ Allocator = (*Stack)(nil)
