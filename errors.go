package bitspan

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPointer is returned when a Span with a non-zero length is
	// built over a nil address.
	ErrNilPointer = errors.New("nil element pointer")
)

// ErrTooLong indicates a requested bit length above MaxBits.
type ErrTooLong struct {
	Bits uint64
}

func (e *ErrTooLong) Error() string {
	return fmt.Sprintf("bit length %d exceeds the %d-bit span ceiling", e.Bits, uint64(MaxBits))
}

// ErrMisaligned indicates a base address that is not aligned for the
// element width.
type ErrMisaligned struct {
	Addr  uintptr
	Align uintptr
}

func (e *ErrMisaligned) Error() string {
	return fmt.Sprintf("address %#x is not %d-byte aligned", e.Addr, e.Align)
}

// ErrAddressOverflow indicates a region whose final element would wrap the
// address space.
type ErrAddressOverflow struct {
	Addr uintptr
	Bits uint64
}

func (e *ErrAddressOverflow) Error() string {
	return fmt.Sprintf("%d bits at address %#x overflow the address space", e.Bits, e.Addr)
}
