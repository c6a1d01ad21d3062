package bitspan

import (
	"unsafe"

	"github.com/hupe1980/bitspan/index"
	"github.com/hupe1980/bitspan/store"
)

// DomainKind classifies the shape of a bit region over its backing
// elements. Exactly one kind applies to any region.
type DomainKind uint8

const (
	// DomainEmpty is the zero-length region.
	DomainEmpty DomainKind = iota

	// DomainMinor is a region confined to a sub-range of one element.
	DomainMinor

	// DomainMajor is a region with a partial first element, zero or more
	// whole elements, and a partial last element.
	DomainMajor

	// DomainPartialHead is a partial first element followed by whole
	// elements, ending exactly on an element boundary.
	DomainPartialHead

	// DomainPartialTail is whole elements followed by a partial last
	// element, starting exactly on an element boundary.
	DomainPartialTail

	// DomainSpanning is whole elements only, aligned on both ends.
	DomainSpanning
)

func (k DomainKind) String() string {
	switch k {
	case DomainEmpty:
		return "empty"
	case DomainMinor:
		return "minor"
	case DomainMajor:
		return "major"
	case DomainPartialHead:
		return "partial-head"
	case DomainPartialTail:
		return "partial-tail"
	case DomainSpanning:
		return "spanning"
	default:
		return "unknown"
	}
}

// Domain is the decomposition of a Span into the pieces a bulk algorithm
// iterates over. It borrows views into the span's backing memory and never
// owns it.
//
// Field validity depends on Kind:
//
//	DomainEmpty        — no fields
//	DomainMinor        — Head, HeadElem (the sole element), Tail
//	DomainMajor        — Head, HeadElem, Body, TailElem, Tail
//	DomainPartialHead  — Head, HeadElem, Body
//	DomainPartialTail  — Body, TailElem, Tail
//	DomainSpanning     — Body
//
// Within HeadElem only the bits Head..BITS are live (Head..Tail for Minor);
// within TailElem only the bits 0..Tail are live; every Body element is
// live in full.
type Domain[T store.Element] struct {
	Kind DomainKind

	Head     index.BitIdx[T]
	HeadElem *T
	Body     []T
	TailElem *T
	Tail     index.BitTail[T]
}

// Domain classifies the region the span describes. The derivation is pure:
// it reads no memory and allocates nothing beyond the returned descriptor.
func (s Span[T]) Domain() Domain[T] {
	if s.bits == 0 {
		return Domain[T]{Kind: DomainEmpty}
	}

	elements := s.Elements()
	tail := s.Tail()

	if elements == 1 {
		// A single exactly-full element is aligned on both ends and is
		// never a one-element partial.
		if s.head == 0 && tail.IsFull() {
			return Domain[T]{Kind: DomainSpanning, Body: s.body(0, 1)}
		}
		return Domain[T]{
			Kind:     DomainMinor,
			Head:     s.head,
			HeadElem: s.ptr.elem(0),
			Tail:     tail,
		}
	}

	headPartial := s.head != 0
	tailPartial := !tail.IsFull()
	switch {
	case headPartial && tailPartial:
		return Domain[T]{
			Kind:     DomainMajor,
			Head:     s.head,
			HeadElem: s.ptr.elem(0),
			Body:     s.body(1, elements-1),
			TailElem: s.ptr.elem(elements - 1),
			Tail:     tail,
		}
	case headPartial:
		return Domain[T]{
			Kind:     DomainPartialHead,
			Head:     s.head,
			HeadElem: s.ptr.elem(0),
			Body:     s.body(1, elements),
		}
	case tailPartial:
		return Domain[T]{
			Kind:     DomainPartialTail,
			Body:     s.body(0, elements-1),
			TailElem: s.ptr.elem(elements - 1),
			Tail:     tail,
		}
	default:
		return Domain[T]{Kind: DomainSpanning, Body: s.body(0, elements)}
	}
}

// body returns the whole-element view over elements [from, to).
func (s Span[T]) body(from, to uint64) []T {
	if to <= from {
		return nil
	}
	return unsafe.Slice(s.ptr.elem(from), to-from)
}
