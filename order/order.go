package order

// Order is a bit ordering policy: a pure mapping between semantic bit indices
// and electrical shift positions within one storage element.
//
// Implementations must be bijections over 0..width for every power-of-two
// width up to 64. This is a hard precondition, not a runtime-checked
// condition: a non-injective policy silently corrupts the regions addressed
// through it. Both arguments are trusted to be in range.
type Order interface {
	// At maps a semantic index to its electrical position within a
	// width-bit element.
	At(width, index uint8) uint8

	// Invert maps an electrical position back to its semantic index. It is
	// the exact inverse of At.
	Invert(width, pos uint8) uint8
}

type lsb0 struct{}

func (lsb0) At(_, index uint8) uint8   { return index }
func (lsb0) Invert(_, pos uint8) uint8 { return pos }
func (lsb0) String() string            { return "Lsb0" }

type msb0 struct{}

func (msb0) At(width, index uint8) uint8   { return width - 1 - index }
func (msb0) Invert(width, pos uint8) uint8 { return width - 1 - pos }
func (msb0) String() string                { return "Msb0" }

var (
	// Lsb0 counts semantic index zero at the least significant bit.
	Lsb0 Order = lsb0{}

	// Msb0 counts semantic index zero at the most significant bit.
	Msb0 Order = msb0{}
)
