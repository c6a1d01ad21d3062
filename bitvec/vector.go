package bitvec

import (
	"github.com/hupe1980/bitspan"
	"github.com/hupe1980/bitspan/index"
	"github.com/hupe1980/bitspan/internal/mem"
	"github.com/hupe1980/bitspan/order"
	"github.com/hupe1980/bitspan/store"
)

// Vector is a growable bit vector backed by aligned storage elements of
// type T. It owns its backing memory; the live region is tracked by a
// bitspan.Span over the slice base.
//
// A Vector is not safe for concurrent use.
type Vector[T store.Element] struct {
	elems []T
	span  bitspan.Span[T]
	ord   order.Order
	codec Codec
}

// New creates an empty Vector.
func New[T store.Element](opts ...Option) *Vector[T] {
	o := options{order: order.Lsb0, codec: CodecNone}
	for _, fn := range opts {
		fn(&o)
	}

	v := &Vector[T]{ord: o.order, codec: o.codec}
	if o.capacity > 0 {
		v.elems = mem.AlignedElems[T](elementsFor[T](o.capacity))
	}
	return v
}

func elementsFor[T store.Element](bits uint64) int {
	w := uint64(store.Bits[T]())
	return int((bits + w - 1) / w)
}

// Len returns the number of live bits.
func (v *Vector[T]) Len() uint64 {
	return v.span.Len()
}

// Cap returns the number of bits reachable without reallocation, counted
// from the current head.
func (v *Vector[T]) Cap() uint64 {
	if len(v.elems) == 0 {
		return 0
	}
	return uint64(len(v.elems))*uint64(store.Bits[T]()) - uint64(v.span.Head())
}

// Order returns the ordering policy the vector was built with.
func (v *Vector[T]) Order() order.Order {
	return v.ord
}

// Span returns the fat bit-pointer describing the live region. The span
// aliases the vector's backing memory and is invalidated by growth.
func (v *Vector[T]) Span() bitspan.Span[T] {
	return v.span
}

// Grow ensures room for at least n additional bits without reallocation. It
// panics when the total would exceed the span bit ceiling.
func (v *Vector[T]) Grow(n uint64) {
	if n > bitspan.MaxBits || uint64(v.span.Head())+v.span.Len()+n > bitspan.MaxBits {
		panic("bitvec: capacity request exceeds the span bit ceiling")
	}
	need := elementsFor[T](uint64(v.span.Head()) + v.span.Len() + n)
	if need <= len(v.elems) {
		return
	}

	elems := mem.AlignedElems[T](growCap(len(v.elems), need))
	copy(elems, v.elems)
	v.elems = elems
	v.rebuild(v.span.Head(), v.span.Len())
}

// growCap doubles until need is covered.
func growCap(cur, need int) int {
	next := cur * 2
	if next < need {
		next = need
	}
	return next
}

// Push appends one bit.
func (v *Vector[T]) Push(val bool) {
	v.Grow(1)
	n := v.span.Len()
	v.rebuild(v.span.Head(), n+1)
	// Reused capacity may hold stale bits, so the new slot is written
	// unconditionally.
	v.set(n, val)
}

// Pop removes and returns the last bit. The second return is false when the
// vector is empty.
func (v *Vector[T]) Pop() (bool, bool) {
	n := v.span.Len()
	if n == 0 {
		return false, false
	}
	val := v.get(n - 1)
	v.rebuild(v.span.Head(), n-1)
	return val, true
}

// Set writes the bit at position i.
func (v *Vector[T]) Set(i uint64, val bool) error {
	if i >= v.span.Len() {
		return &ErrOutOfRange{Index: i, Len: v.span.Len()}
	}
	v.set(i, val)
	return nil
}

// Get reads the bit at position i.
func (v *Vector[T]) Get(i uint64) (bool, error) {
	if i >= v.span.Len() {
		return false, &ErrOutOfRange{Index: i, Len: v.span.Len()}
	}
	return v.get(i), nil
}

// TrimFront drops the first n bits. When the cut stays inside the first
// element the span's head is rewritten in place; otherwise the backing
// slice is advanced and the span rebuilt.
func (v *Vector[T]) TrimFront(n uint64) {
	if n == 0 {
		return
	}
	if n >= v.span.Len() {
		v.rebuild(0, 0)
		return
	}

	delta, idx := v.span.Head().Offset(int64(n)) //nolint:gosec // n < Len <= MaxBits
	if delta == 0 {
		v.span.UnsafeSetHead(idx)
		return
	}

	v.elems = v.elems[delta:]
	v.rebuild(idx, v.span.Len()-n)
}

func (v *Vector[T]) set(i uint64, val bool) {
	elt, idx := v.span.Head().Offset(int64(i)) //nolint:gosec // i < Len <= MaxBits
	sel := idx.Select(v.ord)
	if val {
		v.elems[elt] |= sel
	} else {
		v.elems[elt] &^= sel
	}
}

func (v *Vector[T]) get(i uint64) bool {
	elt, idx := v.span.Head().Offset(int64(i)) //nolint:gosec // i < Len <= MaxBits
	return v.elems[elt]&idx.Select(v.ord) != 0
}

// rebuild re-derives the span after any change to the backing slice, head,
// or length. Construction cannot fail for a well-formed vector; a failure
// here is an internal invariant violation.
func (v *Vector[T]) rebuild(head index.BitIdx[T], bits uint64) {
	var ptr bitspan.Pointer[T]
	if len(v.elems) > 0 {
		ptr = bitspan.NewExclusive(&v.elems[0])
	}

	span, err := bitspan.New(ptr, head, bits)
	if err != nil {
		panic("bitvec: span rebuild: " + err.Error())
	}
	v.span = span
}
