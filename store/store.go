package store

import (
	"math/bits"
	"unsafe"
)

// Element is the closed set of unsigned integer widths that can back a
// bit-addressable region. It must never be widened with types whose size is
// not a power of two or exceeds 64 bits; the index algebra stores in-element
// positions in a single byte and relies on both properties.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Bits returns the width of T in bits. Always a non-zero power of two.
func Bits[T Element]() uint8 {
	return uint8(unsafe.Sizeof(T(0))) * 8
}

// Mask returns the fully-set value of T.
func Mask[T Element]() T {
	return ^T(0)
}

// IndexMask returns Bits[T]()-1, the mask that reduces an arbitrary bit count
// to an in-element index.
func IndexMask[T Element]() uint8 {
	return Bits[T]() - 1
}

// Log2Bits returns the number of bits needed to index a bit inside T.
func Log2Bits[T Element]() uint8 {
	return uint8(bits.TrailingZeros8(Bits[T]()))
}

// Align returns the byte alignment a valid *T address must satisfy.
func Align[T Element]() uintptr {
	return unsafe.Alignof(T(0))
}

// Resize reinterprets v at another element width: widening zero-extends,
// narrowing keeps only the low-order bits.
func Resize[U, T Element](v T) U {
	return U(uint64(v))
}
