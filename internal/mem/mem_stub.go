//go:build !linux

// File: internal/mem/mem_stub.go
// License: Apache-2.0
//
// Fallback slab backing for platforms without the mmap path.

package mem

func allocRegion(size int) ([]byte, bool) {
	return make([]byte, size), false
}

func freeMapped(buf []byte) {}
