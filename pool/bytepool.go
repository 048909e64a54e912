// File: pool/bytepool.go
// License: Apache-2.0

package pool

import (
	"sync"
	"unsafe"

	"github.com/TIVerse/fastalloc/api"
	"github.com/TIVerse/fastalloc/internal/allocator"
	"github.com/TIVerse/fastalloc/internal/mem"
)

// BytePool hands out fixed-size byte buffers carved from one aligned
// slab. Buffers are identified by their base pointer on Put, so callers
// may reslice freely as long as the base survives. Safe for concurrent
// use.
type BytePool struct {
	mu      sync.Mutex
	slab    *mem.Slab
	alloc   *allocator.Stack
	bufSize int
	count   int
}

// NewBytePool creates a pool of count buffers of bufSize bytes each,
// every buffer base aligned to alignment (0 means no alignment
// requirement). bufSize is rounded up so consecutive buffers keep the
// alignment.
func NewBytePool(bufSize, count, alignment int) (*BytePool, error) {
	if bufSize < 1 || count < 1 {
		return nil, api.ErrInvalidCapacity
	}
	if alignment == 0 {
		alignment = 1
	}
	if !mem.IsPowerOfTwo(alignment) {
		return nil, &api.AlignmentError{Alignment: alignment}
	}
	bufSize = mem.AlignUp(bufSize, alignment)
	return &BytePool{
		slab:    mem.NewSlab(bufSize*count, alignment),
		alloc:   allocator.NewStack(count),
		bufSize: bufSize,
		count:   count,
	}, nil
}

// Get returns a free buffer of the pool's buffer size, or false when the
// pool is exhausted. The buffer's capacity is clipped to its slot.
func (p *BytePool) Get() ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	index, ok := p.alloc.Reserve()
	if !ok {
		return nil, false
	}
	off := index * p.bufSize
	return p.slab.Bytes()[off : off+p.bufSize : off+p.bufSize], true
}

// Put returns a buffer to the pool. The slot index is recovered from the
// buffer's base pointer; a buffer from another pool, or a reslice that
// lost the original base, panics.
func (p *BytePool) Put(buf []byte) {
	if len(buf) == 0 {
		panic("pool: put of empty buffer")
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.slab.Bytes())))
	off := uintptr(unsafe.Pointer(unsafe.SliceData(buf))) - base
	if off%uintptr(p.bufSize) != 0 || int(off)/p.bufSize >= p.count {
		panic("pool: put of foreign buffer")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.alloc.Release(int(off) / p.bufSize)
}

// BufferSize returns the size of the buffers Get hands out, after
// alignment rounding.
func (p *BytePool) BufferSize() int { return p.bufSize }

// Available returns the number of free buffers.
func (p *BytePool) Available() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alloc.Available()
}

// Capacity returns the total buffer count.
func (p *BytePool) Capacity() int { return p.count }

// Close releases the slab. All buffers must be back in the pool.
func (p *BytePool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.slab.Free()
}
