// Package bitvec provides a growable bit vector built on the bitspan
// addressing primitives.
//
// Architecture:
//   - Backing storage is a cache-line-aligned element slice; the live
//     region is described by a bitspan.Span over its base.
//   - Bit ordering is a construction-time policy (order.Lsb0 by default).
//   - Boolean queries (All, Any, ...) walk the span's domain decomposition:
//     at most two elements are examined bit by bit, every other element is
//     a single whole-word comparison.
//   - Front trimming inside the first element reuses the span's head
//     rewrite instead of rebuilding the handle.
//
// Snapshots written by WriteTo are little-endian and may be compressed with
// zstd or lz4, selected with WithCodec.
package bitvec
