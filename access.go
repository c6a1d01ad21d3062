package bitspan

import (
	"unsafe"

	"github.com/hupe1980/bitspan/store"
)

// Access records how the memory behind a Pointer may be dereferenced. It
// carries no ownership and is never arbitrated at runtime; the tag only
// states the aliasing discipline the caller has chosen.
type Access uint8

const (
	// AccessExclusive marks a uniquely held mutable address. No concurrent
	// aliasing of any kind is permitted while the region is in use.
	AccessExclusive Access = iota

	// AccessShared marks an address that may be aliased by any number of
	// concurrent readers. No mutation is permitted.
	AccessShared

	// AccessAtomic marks an address that may be mutated concurrently, but
	// only through element-level atomic operations.
	AccessAtomic
)

func (a Access) String() string {
	switch a {
	case AccessExclusive:
		return "exclusive"
	case AccessShared:
		return "shared"
	case AccessAtomic:
		return "atomic"
	default:
		return "unknown"
	}
}

// Pointer is a tagged element address: one compact value representing an
// exclusive, shared, or atomically accessed view of the same backing
// memory. It exists so one Span representation serves all three access
// policies without duplicating the surrounding logic per policy.
type Pointer[T store.Element] struct {
	p   unsafe.Pointer
	tag Access
}

// NewExclusive tags p as uniquely held and mutable.
func NewExclusive[T store.Element](p *T) Pointer[T] {
	return Pointer[T]{p: unsafe.Pointer(p), tag: AccessExclusive}
}

// NewShared tags p as read-only and freely aliased.
func NewShared[T store.Element](p *T) Pointer[T] {
	return Pointer[T]{p: unsafe.Pointer(p), tag: AccessShared}
}

// NewAtomic tags p as concurrently mutable through element-level atomic
// operations.
func NewAtomic[T store.Element](p *T) Pointer[T] {
	return Pointer[T]{p: unsafe.Pointer(p), tag: AccessAtomic}
}

// R returns the read-oriented view of the address regardless of tag.
// Writing through it is permitted only when the tag discipline allows, and
// the type performs no check: selecting a tag consistent with the aliasing
// actually in effect is the caller's responsibility.
func (p Pointer[T]) R() *T {
	return (*T)(p.p)
}

// Tag returns the access capability recorded at construction.
func (p Pointer[T]) Tag() Access {
	return p.tag
}

// IsNil reports whether the pointer holds no address.
func (p Pointer[T]) IsNil() bool {
	return p.p == nil
}

// elem returns the address of the i-th element after the base.
func (p Pointer[T]) elem(i uint64) *T {
	return (*T)(unsafe.Add(p.p, uintptr(i)*unsafe.Sizeof(T(0))))
}
