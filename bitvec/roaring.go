package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitspan/internal/conv"
	"github.com/hupe1980/bitspan/store"
)

// ToBitmap converts the set bits to a 32-bit roaring bitmap for sparse
// interop. Vectors longer than the 32-bit universe are rejected.
func (v *Vector[T]) ToBitmap() (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i := uint64(0); i < v.Len(); i++ {
		if !v.get(i) {
			continue
		}
		id, err := conv.Uint64ToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("bit index: %w", err)
		}
		rb.Add(id)
	}
	return rb, nil
}

// FromBitmap builds a dense vector from a roaring bitmap. The vector's
// length is one past the highest set bit; an empty or nil bitmap yields an
// empty vector.
func FromBitmap[T store.Element](rb *roaring.Bitmap, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	if rb == nil || rb.IsEmpty() {
		return v
	}

	bits := uint64(rb.Maximum()) + 1
	v.Grow(bits)
	v.rebuild(v.span.Head(), bits)

	it := rb.Iterator()
	for it.HasNext() {
		v.set(uint64(it.Next()), true)
	}
	return v
}
