// Package mem provides cache-line-aligned allocation for bit-vector backing
// storage.
//
// Alignment to one cache line keeps independently owned vectors from
// sharing a line, so mutation through atomic-tagged spans never causes
// false sharing between unrelated containers.
package mem
