//go:build linux

// File: internal/mem/mem_linux.go
// License: Apache-2.0
//
// Linux slab backing. Regions at or above the mmap threshold come from
// anonymous mmap so they are page-aligned, stay off the Go heap and can be
// advised as huge pages. Smaller regions are ordinary heap slices.

package mem

import "golang.org/x/sys/unix"

// Regions below this stay on the Go heap; mmap per small chunk would waste
// a page minimum and slow growth of small pools.
const mmapThreshold = 1 << 20

func allocRegion(size int) ([]byte, bool) {
	if size < mmapThreshold {
		return make([]byte, size), false
	}
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return make([]byte, size), false
	}
	// Best effort; the slab works the same without huge pages.
	_ = unix.Madvise(buf, unix.MADV_HUGEPAGE)
	return buf, true
}

func freeMapped(buf []byte) {
	_ = unix.Munmap(buf)
}
