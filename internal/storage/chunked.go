// File: internal/storage/chunked.go
// License: Apache-2.0

package storage

import (
	"fmt"
	"reflect"
	"sort"
	"unsafe"

	"github.com/TIVerse/fastalloc/internal/mem"
)

type chunk[T any] struct {
	slots []T
	slab  *mem.Slab // non-nil when the chunk was carved from an aligned slab
}

// Chunked is the backing store for a pool's slots. Access is not
// synchronized; the owning pool serializes mutation. Slots are reachable
// only through the pool's allocate/release paths and the handles it
// issues, never as raw uninitialized storage.
type Chunked[T any] struct {
	chunks []chunk[T]
	bounds []int // bounds[k] = slots covered by chunks 0..k, ascending
	align  int   // forced base alignment; 0 means natural
}

// New creates storage with a single chunk of capacity slots. A non-zero
// alignment forces the chunk base onto that boundary; it must already be
// validated (power of two, >= natural alignment, pointer-free T).
func New[T any](capacity, alignment int) *Chunked[T] {
	c := &Chunked[T]{align: alignment}
	c.Grow(capacity)
	return c
}

// Grow appends one chunk of n slots and extends the boundary table.
// Existing chunks never move, so previously resolved slot pointers stay
// valid. The append is all-or-nothing from the caller's perspective.
func (c *Chunked[T]) Grow(n int) {
	if n <= 0 {
		panic(fmt.Sprintf("storage: chunk size must be positive, got %d", n))
	}
	ck := newChunk[T](n, c.align)
	total := n
	if len(c.bounds) > 0 {
		total += c.bounds[len(c.bounds)-1]
	}
	c.chunks = append(c.chunks, ck)
	c.bounds = append(c.bounds, total)
}

// At resolves a flat slot index to its address via binary search over the
// boundary table.
func (c *Chunked[T]) At(index int) *T {
	k := sort.Search(len(c.bounds), func(i int) bool { return c.bounds[i] > index })
	if index < 0 || k == len(c.bounds) {
		panic(fmt.Sprintf("storage: index %d out of range (capacity %d)", index, c.Cap()))
	}
	offset := index
	if k > 0 {
		offset -= c.bounds[k-1]
	}
	return &c.chunks[k].slots[offset]
}

// Cap returns the total slot count across all chunks.
func (c *Chunked[T]) Cap() int {
	if len(c.bounds) == 0 {
		return 0
	}
	return c.bounds[len(c.bounds)-1]
}

// Chunks returns the number of chunks.
func (c *Chunked[T]) Chunks() int { return len(c.chunks) }

// Free releases slab-backed chunks to the OS. The storage must not be
// used afterwards.
func (c *Chunked[T]) Free() {
	for i := range c.chunks {
		if c.chunks[i].slab != nil {
			c.chunks[i].slots = nil
			c.chunks[i].slab.Free()
			c.chunks[i].slab = nil
		}
	}
	c.chunks = nil
	c.bounds = nil
}

func newChunk[T any](n, align int) chunk[T] {
	var zero T
	size := int(unsafe.Sizeof(zero))
	natural := int(unsafe.Alignof(zero))
	if align <= natural || size == 0 {
		return chunk[T]{slots: make([]T, n)}
	}
	// The slab is opaque to the garbage collector, so this path is only
	// legal for pointer-free element types; config validation enforces it.
	rt := reflect.TypeOf(zero)
	if rt == nil || mem.HasPointers(rt) {
		panic("storage: aligned chunks require a pointer-free element type")
	}
	slab := mem.NewSlab(n*size, align)
	base := (*T)(unsafe.Pointer(&slab.Bytes()[0]))
	return chunk[T]{slots: unsafe.Slice(base, n), slab: slab}
}
