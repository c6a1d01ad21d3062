// Package store defines the element widths usable as backing storage for
// bit-addressable regions.
//
// Architecture:
//   - Element is a closed generic constraint over the unsigned fixed-width
//     integers plus the platform word. Width dispatch is resolved at compile
//     time; there is no runtime polymorphism.
//   - Bits, Mask, IndexMask and Log2Bits expose the per-width constants the
//     index algebra and domain decomposition are written against.
//   - Resize moves values between caller-chosen widths (zero-extend up,
//     low-bits-truncate down) so generic code can reason across widths.
//
// Everything here is pure data with no failure modes.
package store
