// Package hash collects the hashing primitives shared across the loader and the
// heap-trix row hash-maps.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string, used to key the named-identifier table.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Mix64 applies the MurmurHash3 64-bit finalizer to an integer index, used by the
// heap-trix row hash-maps to scatter sequential row/column ids across buckets.
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return x
}
