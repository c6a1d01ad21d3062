package index

import "fmt"

// ErrIdxRange indicates a semantic bit index at or beyond the element width.
type ErrIdxRange struct {
	Index uint8
	Width uint8
}

func (e *ErrIdxRange) Error() string {
	return fmt.Sprintf("bit index %d out of range for a %d-bit element", e.Index, e.Width)
}

// ErrTailRange indicates a tail marker beyond the element width.
type ErrTailRange struct {
	Tail  uint8
	Width uint8
}

func (e *ErrTailRange) Error() string {
	return fmt.Sprintf("bit tail %d out of range for a %d-bit element", e.Tail, e.Width)
}

// ErrPosRange indicates an electrical position at or beyond the element width.
type ErrPosRange struct {
	Pos   uint8
	Width uint8
}

func (e *ErrPosRange) Error() string {
	return fmt.Sprintf("bit position %d out of range for a %d-bit element", e.Pos, e.Width)
}
