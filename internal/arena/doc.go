// Package arena provides a monotonic, slab-based allocator for heap-trix elements:
// new values are carved out of large pre-allocated backing slices rather than
// allocated one at a time, and freed values go onto a free-list that satisfies the
// next allocation before a new slab is touched. This is the Go analogue of the
// reference implementation's memory_monotonic_unsafe paired with its per-type
// mma_buf free-list, trading manual placement-new for a generic slab of T.
package arena
