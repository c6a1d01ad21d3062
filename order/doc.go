// Package order decouples semantic bit indices from electrical bit positions.
//
// A semantic index is a bit's position as the addressing layer sees it: index
// zero is the "first" bit of an element regardless of how the element stores
// it. An electrical position is the actual shift amount used to build a mask.
// Two policies ship: Lsb0 (index zero is the least significant bit) and Msb0
// (index zero is the most significant bit).
package order
