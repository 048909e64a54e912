// Package allocator tracks which slot indices of a pool are free.
// License: Apache-2.0
//
// Three interchangeable strategies share one contract: Stack reuses
// indices in LIFO order for cache hotness, FreeList gives O(1) reuse with
// no ordering guarantee, Bitmap spends one bit per slot where metadata
// overhead matters. All three panic on free-set misuse instead of
// corrupting it.
package allocator
