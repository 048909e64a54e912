// File: pool/guard.go
// License: Apache-2.0

package pool

import "sync/atomic"

// accessGuard turns overlapping calls into a pool that is not thread-safe
// from silent corruption into a panic. It is not a lock: contention is a
// caller bug, not something to wait out.
type accessGuard struct {
	busy atomic.Int32
}

func (g *accessGuard) enter() {
	if !g.busy.CompareAndSwap(0, 1) {
		panic("pool: concurrent access to a pool that is not thread-safe")
	}
}

func (g *accessGuard) exit() {
	g.busy.Store(0)
}
