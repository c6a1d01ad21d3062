package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptSnapshot is returned when a serialized vector fails
	// structural validation.
	ErrCorruptSnapshot = errors.New("corrupt bit-vector snapshot")
)

// ErrOutOfRange indicates a bit access past the live length.
type ErrOutOfRange struct {
	Index uint64
	Len   uint64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("bit %d out of range for length %d", e.Index, e.Len)
}

// ErrWidthMismatch indicates a snapshot written with a different element
// width than the vector it is being read into.
type ErrWidthMismatch struct {
	Stored uint8
	Want   uint8
}

func (e *ErrWidthMismatch) Error() string {
	return fmt.Sprintf("snapshot element width %d, want %d", e.Stored, e.Want)
}

// ErrUnknownCodec indicates a snapshot carrying a codec byte this build
// does not understand.
type ErrUnknownCodec struct {
	Codec uint8
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown snapshot codec %d", e.Codec)
}
