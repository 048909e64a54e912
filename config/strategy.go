// File: config/strategy.go
// License: Apache-2.0

package config

// Strategy selects the slot-index allocator backing a pool. The
// strategies are interchangeable; they differ in reuse order and
// per-slot overhead.
type Strategy int

const (
	// StrategyDefault lets the pool variant choose: LIFO stack for
	// fixed pools, free list for growing ones.
	StrategyDefault Strategy = iota

	// StrategyStack reuses the most recently released slot first, which
	// keeps a tight allocate/release loop on cache-warm memory. One
	// machine word per free slot.
	StrategyStack

	// StrategyFreeList reuses slots in release order. One machine word
	// per free slot.
	StrategyFreeList

	// StrategyBitmap tracks free slots with one bit each plus a
	// next-free hint. Reuse order follows slot index, not release
	// order.
	StrategyBitmap
)
