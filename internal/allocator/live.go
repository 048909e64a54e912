// File: internal/allocator/live.go
// License: Apache-2.0

package allocator

import "fmt"

const bitsPerWord = 64

// liveBits records which indices are currently reserved so that free-set
// misuse fails loudly instead of silently handing a slot to two owners.
// Stack and FreeList carry one; Bitmap is its own guard.
type liveBits struct {
	words []uint64
}

func (b *liveBits) grow(capacity int) {
	nw := (capacity + bitsPerWord - 1) / bitsPerWord
	for len(b.words) < nw {
		b.words = append(b.words, 0)
	}
}

func (b *liveBits) markLive(index int) {
	w, bit := index/bitsPerWord, uint(index%bitsPerWord)
	if b.words[w]&(1<<bit) != 0 {
		panic(fmt.Sprintf("allocator: index %d reserved twice", index))
	}
	b.words[w] |= 1 << bit
}

func (b *liveBits) markFree(index int) {
	w, bit := index/bitsPerWord, uint(index%bitsPerWord)
	if b.words[w]&(1<<bit) == 0 {
		panic(fmt.Sprintf("allocator: double release of index %d", index))
	}
	b.words[w] &^= 1 << bit
}
