// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow or
// underflow when converting between signed/unsigned and different bit-width
// integer types.
//
// Use cases:
//   - Validating untrusted fields read back from a serialized bit vector
//     (element widths, head indices, payload sizes)
//   - Converting bit indices to the 32-bit universe of a roaring bitmap
//
// For conversions that are provably safe by domain constraints, use direct
// type casts instead to avoid overhead.
package conv
