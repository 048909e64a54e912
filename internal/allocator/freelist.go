// File: internal/allocator/freelist.go
// License: Apache-2.0
//
// Free-list index allocator. Same O(1) contract as Stack but no ordering
// guarantee on reuse. Backs the growing pool, where growth appends index
// ranges that are not contiguous with earlier frees anyway.

package allocator

import (
	"fmt"

	"github.com/eapache/queue"
)

// FreeList keeps the free indices in a ring-backed queue.
type FreeList struct {
	free     *queue.Queue
	capacity int
	live     liveBits
}

// NewFreeList creates a free-list allocator with every index free.
func NewFreeList(capacity int) *FreeList {
	f := &FreeList{
		free:     queue.New(),
		capacity: capacity,
	}
	for i := 0; i < capacity; i++ {
		f.free.Add(i)
	}
	f.live.grow(capacity)
	return f
}

func (f *FreeList) Reserve() (int, bool) {
	if f.free.Length() == 0 {
		return 0, false
	}
	index := f.free.Remove().(int)
	f.live.markLive(index)
	return index, true
}

func (f *FreeList) Release(index int) {
	if index < 0 || index >= f.capacity {
		panic(fmt.Sprintf("allocator: release of out-of-range index %d (capacity %d)", index, f.capacity))
	}
	f.live.markFree(index)
	f.free.Add(index)
}

func (f *FreeList) Extend(n int) {
	old := f.capacity
	f.capacity += n
	f.live.grow(f.capacity)
	for i := old; i < f.capacity; i++ {
		f.free.Add(i)
	}
}

func (f *FreeList) Available() int { return f.free.Length() }

func (f *FreeList) Capacity() int { return f.capacity }

var _ Allocator = (*FreeList)(nil)
