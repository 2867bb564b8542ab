// Package heaptrix implements the indexed-heap-over-hashed-rows data structure that
// backs single- and complete-linkage agglomerative clustering: a sparse distance
// matrix stored as open-addressed row hash-maps, paired with a binary min-heap whose
// elements carry a back-pointer to their own heap slot so a row merge can replace or
// remove heap entries in place instead of rebuilding the heap. This is a direct port
// of the reference implementation's matrix_row_ht/matrix/heap trio and its do_clustering
// merge loop, with manual memory management replaced by the arena package's slab
// allocator and free-list.
package heaptrix
