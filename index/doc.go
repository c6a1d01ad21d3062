// Package index provides the numeric wrapper types that keep "which bit
// inside an element" values always in range.
//
// Three kinds exist, with three distinct valid ranges:
//   - BitIdx: a semantic index of a live bit, 0 <= i < BITS.
//   - BitTail: the index one past the last live bit, 0 <= t <= BITS. The
//     value BITS marks a fully occupied element.
//   - BitPos: an electrical shift position after applying an ordering
//     policy, 0 <= p < BITS. Used only to build masks, never for semantic
//     reasoning.
//
// Checked constructors reject out-of-range values at the point of
// construction, so a bad index is never discovered later as silent
// corruption.
package index
