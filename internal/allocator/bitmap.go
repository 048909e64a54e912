// File: internal/allocator/bitmap.go
// License: Apache-2.0
//
// Bitmap index allocator: one bit per slot plus a next-free word hint.
// Reserve is O(1) amortized through the hint and O(words) only when the
// hint is stale. Chosen when per-slot metadata must stay near one bit
// instead of one word.

package allocator

import (
	"fmt"
	"math/bits"
)

// Bitmap tracks slot liveness as a bit vector. A set bit means live, so
// the structure doubles as its own double-release guard.
type Bitmap struct {
	words     []uint64
	capacity  int
	allocated int
	hint      int // word index to start scanning from
}

// NewBitmap creates a bitmap allocator with every index free.
func NewBitmap(capacity int) *Bitmap {
	nw := (capacity + bitsPerWord - 1) / bitsPerWord
	return &Bitmap{
		words:    make([]uint64, nw),
		capacity: capacity,
	}
}

func (b *Bitmap) Reserve() (int, bool) {
	if b.allocated >= b.capacity {
		return 0, false
	}
	nw := len(b.words)
	for off := 0; off < nw; off++ {
		w := (b.hint + off) % nw
		word := b.words[w]
		if word == ^uint64(0) {
			continue
		}
		bit := bits.TrailingZeros64(^word)
		index := w*bitsPerWord + bit
		if index >= b.capacity {
			// Free bits past capacity in the last word.
			continue
		}
		b.words[w] |= 1 << uint(bit)
		b.allocated++
		b.hint = w
		return index, true
	}
	return 0, false
}

func (b *Bitmap) Release(index int) {
	if index < 0 || index >= b.capacity {
		panic(fmt.Sprintf("allocator: release of out-of-range index %d (capacity %d)", index, b.capacity))
	}
	w, bit := index/bitsPerWord, uint(index%bitsPerWord)
	if b.words[w]&(1<<bit) == 0 {
		panic(fmt.Sprintf("allocator: double release of index %d", index))
	}
	b.words[w] &^= 1 << bit
	b.allocated--
	b.hint = w
}

func (b *Bitmap) Extend(n int) {
	b.capacity += n
	nw := (b.capacity + bitsPerWord - 1) / bitsPerWord
	for len(b.words) < nw {
		b.words = append(b.words, 0)
	}
}

func (b *Bitmap) Available() int { return b.capacity - b.allocated }

func (b *Bitmap) Capacity() int { return b.capacity }

var _ Allocator = (*Bitmap)(nil)
