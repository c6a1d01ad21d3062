// Package bitspan addresses arbitrary word-backed memory at single-bit
// granularity without allocating one byte per bit.
//
// The package supplies the addressing primitives that bit containers and
// bulk bit algorithms are built from:
//
//   - Pointer: one element address tagged with how it may be dereferenced
//     (exclusive, shared, or atomic).
//   - Span: a fat bit-pointer packing the tagged address, the first live bit
//     within the first element, and a bit length.
//   - Domain: the decomposition of a Span into its partial-head element,
//     whole-element body, and partial-tail element.
//
// # Quick Start
//
//	words := make([]uint8, 4)
//	head, _ := index.NewIdx[uint8](5)
//	span, _ := bitspan.New(bitspan.NewExclusive(&words[0]), head, 20)
//
//	d := span.Domain()
//	// d.Kind == bitspan.DomainMajor: bits 5..8 of words[0], all of
//	// words[1] and words[2], bits 0..1 of words[3].
//
// The decomposition is why this layer exists: a bulk algorithm (fill, copy,
// compare, population count) touches at most two elements with bit-masked
// partial operations and treats every other element as a whole-word
// operation.
//
// # Concurrency
//
// Every value here is an independent, copyable descriptor; no operation
// blocks, suspends, or takes a lock. Safety across goroutines is a caller
// discipline recorded in the Pointer tag, never an enforced mechanism:
//
//   - AccessExclusive regions must not be aliased at all while in use.
//   - AccessShared regions permit concurrent read-only aliasing.
//   - AccessAtomic regions permit concurrent mutation, but only through
//     element-level atomic operations.
//
// The smallest independently addressable concurrency unit is one full
// storage element, not one bit. Two spans over disjoint bit ranges that
// share an element require atomic access to avoid a data race on that
// element.
package bitspan
