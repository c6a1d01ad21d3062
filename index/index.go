package index

import (
	"github.com/hupe1980/bitspan/order"
	"github.com/hupe1980/bitspan/store"
)

// BitIdx is the semantic index of a live bit within a single storage element
// of type T. A valid BitIdx is always strictly below the element width; it
// never equals BITS.
type BitIdx[T store.Element] uint8

// NewIdx builds a BitIdx, rejecting values at or beyond the element width.
func NewIdx[T store.Element](n uint8) (BitIdx[T], error) {
	if w := store.Bits[T](); n >= w {
		return 0, &ErrIdxRange{Index: n, Width: w}
	}
	return BitIdx[T](n), nil
}

// Offset adds a signed bit displacement to the index, returning how many
// whole elements the base pointer must move and the resulting in-element
// index. The displacement is range-reduced modulo the element width; a
// negative remainder borrows one element from the delta.
//
// Wraparound beyond the representable element-count range is not defended
// against; callers bound displacements by the span length ceiling.
func (i BitIdx[T]) Offset(by int64) (elements int64, idx BitIdx[T]) {
	w := int64(store.Bits[T]())
	next := int64(i) + by
	elements = next / w
	rem := next % w
	if rem < 0 {
		elements--
		rem += w
	}
	return elements, BitIdx[T](rem)
}

// Pos applies an ordering policy, yielding the electrical position of the
// bit this index names.
func (i BitIdx[T]) Pos(o order.Order) BitPos[T] {
	return BitPos[T](o.At(store.Bits[T](), uint8(i)))
}

// Select returns the single-bit mask selecting this index under an ordering
// policy.
func (i BitIdx[T]) Select(o order.Order) T {
	return i.Pos(o).Mask()
}

// BitTail is the index one past the last live bit within a single storage
// element: 0 <= t <= BITS. The value BITS marks an element occupied through
// its end, and doubles as the canonical marker of an empty region when
// paired with a zero head.
type BitTail[T store.Element] uint8

// NewTail builds a BitTail, rejecting values beyond the element width.
func NewTail[T store.Element](n uint8) (BitTail[T], error) {
	if w := store.Bits[T](); n > w {
		return 0, &ErrTailRange{Tail: n, Width: w}
	}
	return BitTail[T](n), nil
}

// FullTail returns the distinguished tail marker equal to the element width.
func FullTail[T store.Element]() BitTail[T] {
	return BitTail[T](store.Bits[T]())
}

// IsFull reports whether the tail sits exactly on the element boundary.
func (t BitTail[T]) IsFull() bool {
	return uint8(t) == store.Bits[T]()
}

// BitPos is an electrical shift position within a storage element, produced
// by applying an ordering policy to a BitIdx. It exists only to generate
// masks.
type BitPos[T store.Element] uint8

// NewPos builds a BitPos, rejecting values at or beyond the element width.
func NewPos[T store.Element](n uint8) (BitPos[T], error) {
	if w := store.Bits[T](); n >= w {
		return 0, &ErrPosRange{Pos: n, Width: w}
	}
	return BitPos[T](n), nil
}

// Mask returns the single-bit mask with only this position set.
func (p BitPos[T]) Mask() T {
	return T(1) << p
}

// MaskUpTo returns the least-significant-aligned mask covering min(n, BITS)
// bits: zero for n == 0, the full element mask for any n >= BITS.
func MaskUpTo[T store.Element](n uint64) T {
	if w := uint64(store.Bits[T]()); n >= w {
		return store.Mask[T]()
	}
	return T(1)<<n - 1
}
