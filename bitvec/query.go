package bitvec

import (
	"github.com/hupe1980/bitspan"
	"github.com/hupe1980/bitspan/store"
)

// All reports whether every live bit is set. The empty vector returns true.
//
// The walk follows the span's domain decomposition: partial elements are
// tested bit by bit under the ordering policy, whole elements with a single
// comparison against the full mask.
func (v *Vector[T]) All() bool {
	d := v.span.Domain()
	w := store.Bits[T]()

	switch d.Kind {
	case bitspan.DomainEmpty:
		return true
	case bitspan.DomainMinor:
		return v.allRange(*d.HeadElem, uint8(d.Head), uint8(d.Tail))
	case bitspan.DomainMajor:
		return v.allRange(*d.HeadElem, uint8(d.Head), w) &&
			allFull(d.Body) &&
			v.allRange(*d.TailElem, 0, uint8(d.Tail))
	case bitspan.DomainPartialHead:
		return v.allRange(*d.HeadElem, uint8(d.Head), w) && allFull(d.Body)
	case bitspan.DomainPartialTail:
		return allFull(d.Body) && v.allRange(*d.TailElem, 0, uint8(d.Tail))
	default:
		return allFull(d.Body)
	}
}

// Any reports whether at least one live bit is set. The empty vector
// returns false.
func (v *Vector[T]) Any() bool {
	d := v.span.Domain()
	w := store.Bits[T]()

	switch d.Kind {
	case bitspan.DomainEmpty:
		return false
	case bitspan.DomainMinor:
		return v.anyRange(*d.HeadElem, uint8(d.Head), uint8(d.Tail))
	case bitspan.DomainMajor:
		return v.anyRange(*d.HeadElem, uint8(d.Head), w) ||
			anyLive(d.Body) ||
			v.anyRange(*d.TailElem, 0, uint8(d.Tail))
	case bitspan.DomainPartialHead:
		return v.anyRange(*d.HeadElem, uint8(d.Head), w) || anyLive(d.Body)
	case bitspan.DomainPartialTail:
		return anyLive(d.Body) || v.anyRange(*d.TailElem, 0, uint8(d.Tail))
	default:
		return anyLive(d.Body)
	}
}

// NotAll reports whether at least one live bit is unset.
func (v *Vector[T]) NotAll() bool {
	return !v.All()
}

// NotAny reports whether no live bit is set.
func (v *Vector[T]) NotAny() bool {
	return !v.Any()
}

// Some reports whether the vector holds both set and unset bits.
func (v *Vector[T]) Some() bool {
	return v.Any() && v.NotAll()
}

func (v *Vector[T]) allRange(elt T, from, to uint8) bool {
	w := store.Bits[T]()
	for i := from; i < to; i++ {
		if elt&(T(1)<<v.ord.At(w, i)) == 0 {
			return false
		}
	}
	return true
}

func (v *Vector[T]) anyRange(elt T, from, to uint8) bool {
	w := store.Bits[T]()
	for i := from; i < to; i++ {
		if elt&(T(1)<<v.ord.At(w, i)) != 0 {
			return true
		}
	}
	return false
}

func allFull[T store.Element](body []T) bool {
	for _, e := range body {
		if e != store.Mask[T]() {
			return false
		}
	}
	return true
}

func anyLive[T store.Element](body []T) bool {
	for _, e := range body {
		if e != 0 {
			return true
		}
	}
	return false
}
