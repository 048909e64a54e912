// Package storage owns the value slots of a pool as an append-only
// sequence of non-moving chunks.
// License: Apache-2.0
//
// Chunks are never resized or relocated, which is what keeps slot
// pointers issued to handles valid across growth. A cumulative boundary
// table maps a flat slot index to its owning chunk in O(log chunks).
package storage
