package mem

import (
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/bitspan/store"
)

// Alignment is the byte alignment of backing allocations: the platform
// cache line size. Always a power of two.
var Alignment = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// AllocAligned allocates a byte slice of the given size whose first byte
// sits on a cache line boundary.
//
// Note: slightly more memory than requested is allocated to make room for
// the aligned offset. The underlying array is kept alive by the returned
// slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	align := uintptr(Alignment)
	buf := make([]byte, size+Alignment)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	offset := int((align - uintptr(ptr)&(align-1)) & (align - 1))

	return buf[offset : offset+size]
}

// AlignedElems allocates n zeroed storage elements of type T starting on a
// cache line boundary.
func AlignedElems[T store.Element](n int) []T {
	if n == 0 {
		return nil
	}

	size := int(unsafe.Sizeof(T(0)))
	buf := AllocAligned(n * size)

	// Safe: cache line alignment subsumes the element alignment.
	ptr := unsafe.Pointer(&buf[0])       //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}
