// File: internal/mem/mem.go
// License: Apache-2.0
//
// Aligned slab allocation shared by chunked storage and the byte pool.
// Platform-specific backing lives in mem_linux.go and mem_stub.go.

package mem

import (
	"reflect"
	"unsafe"
)

// Slab is a zeroed byte region whose base address honors a requested
// alignment. Mapped slabs come straight from the OS and must be freed
// explicitly; heap slabs are left to the garbage collector.
type Slab struct {
	buf    []byte
	raw    []byte // full allocation including alignment padding
	mapped bool
}

// Bytes returns the aligned region.
func (s *Slab) Bytes() []byte { return s.buf }

// Free returns mapped slabs to the OS. Safe to call more than once and on
// heap-backed slabs, where it is a no-op.
func (s *Slab) Free() {
	if s.mapped {
		freeMapped(s.raw)
		s.mapped = false
	}
	s.buf = nil
	s.raw = nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// AlignUp rounds n up to the next multiple of align. align must be a
// power of two.
func AlignUp(n, align int) int { return (n + align - 1) &^ (align - 1) }

// NewSlab allocates a zeroed slab of size bytes whose first byte is
// aligned to align. align must be a power of two.
func NewSlab(size, align int) *Slab {
	if !IsPowerOfTwo(align) {
		panic("mem: slab alignment must be a power of two")
	}
	if size <= 0 {
		panic("mem: slab size must be positive")
	}
	raw, mapped := allocRegion(size + align)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & uintptr(align-1)); rem != 0 {
		off = align - rem
	}
	return &Slab{buf: raw[off : off+size], mapped: mapped, raw: raw}
}

// HasPointers reports whether values of type t contain pointers the
// garbage collector would need to scan. Slabs are opaque to the collector,
// so pointer-bearing element types must not be stored in them.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, strings, channels, funcs, interfaces.
		return true
	}
}
