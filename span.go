package bitspan

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/bitspan/index"
	"github.com/hupe1980/bitspan/store"
)

// MaxBits is the largest bit length a Span can describe. It sits well below
// the platform ceiling so that bit, byte, and element arithmetic never
// overflows while converting between granularities.
const MaxBits = 1<<61 - 1

// Span is a fat bit-pointer: a tagged element address, the index of the
// first live bit within the first element, and a bit length. It is the
// handle for any bit-addressable region.
//
// The triple is stored as three explicit fields rather than packed into
// spare address bits; the accessor contract is identical and the explicit
// form is auditable.
//
// A Span is immutable once built; a new value is built to describe a
// different region. The single exception is UnsafeSetHead, reserved for the
// owning container.
type Span[T store.Element] struct {
	ptr  Pointer[T]
	head index.BitIdx[T]
	bits uint64
}

// New builds a Span over the bits-long region starting at bit head of the
// element at ptr.
//
// It fails when head is invalid for the element width, when bits exceeds
// MaxBits, when a non-empty region is rooted at a nil or misaligned
// address, or when the final element would wrap the address space. A zero
// length canonicalizes the head to zero; the address is kept and may be
// nil.
func New[T store.Element](ptr Pointer[T], head index.BitIdx[T], bits uint64) (Span[T], error) {
	if bits > MaxBits {
		return Span[T]{}, &ErrTooLong{Bits: bits}
	}
	if w := store.Bits[T](); uint8(head) >= w {
		return Span[T]{}, &index.ErrIdxRange{Index: uint8(head), Width: w}
	}
	if bits == 0 {
		return Span[T]{ptr: ptr}, nil
	}
	if ptr.IsNil() {
		return Span[T]{}, ErrNilPointer
	}

	addr := uintptr(ptr.p)
	if align := store.Align[T](); addr%align != 0 {
		return Span[T]{}, &ErrMisaligned{Addr: addr, Align: align}
	}

	span := Span[T]{ptr: ptr, head: head, bits: bits}
	size := uintptr(unsafe.Sizeof(T(0)))
	end := addr + uintptr(span.Elements())*size
	if end < addr {
		return Span[T]{}, &ErrAddressOverflow{Addr: addr, Bits: bits}
	}
	return span, nil
}

// Pointer returns the tagged base address.
func (s Span[T]) Pointer() Pointer[T] {
	return s.ptr
}

// Head returns the index of the first live bit within the first element.
func (s Span[T]) Head() index.BitIdx[T] {
	return s.head
}

// Tail returns the index one past the last live bit within the last touched
// element. An empty span reports the canonical full-tail marker.
func (s Span[T]) Tail() index.BitTail[T] {
	if s.bits == 0 {
		return index.FullTail[T]()
	}
	w := uint64(store.Bits[T]())
	return index.BitTail[T]((uint64(s.head)+s.bits-1)%w + 1)
}

// Len returns the number of live bits.
func (s Span[T]) Len() uint64 {
	return s.bits
}

// IsEmpty reports whether the span holds no live bits.
func (s Span[T]) IsEmpty() bool {
	return s.bits == 0
}

// Elements returns the number of storage elements the span touches.
func (s Span[T]) Elements() uint64 {
	if s.bits == 0 {
		return 0
	}
	w := uint64(store.Bits[T]())
	return (uint64(s.head) + s.bits + w - 1) / w
}

// UnsafeSetHead rewrites the head index in place, keeping the span's end
// bit fixed: moving the head forward shrinks the region, moving it backward
// grows it toward the base of the first element.
//
// This is the one mutation a Span permits and it is reserved for the owning
// container's growth and shrink bookkeeping. Callers must guarantee that
// every bit between the new head and the unchanged end lies in memory they
// own, and that a forward move does not exceed the current length. No
// range check is performed beyond the head index itself.
func (s *Span[T]) UnsafeSetHead(head index.BitIdx[T]) {
	s.bits = uint64(int64(s.bits) + int64(s.head) - int64(head))
	s.head = head
}

func (s Span[T]) String() string {
	return fmt.Sprintf("Span{%s %p, head %d, %d bits}", s.ptr.tag, s.ptr.p, uint8(s.head), s.bits)
}
