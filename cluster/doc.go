// Package cluster implements the four linear-time clustering algorithms that read a
// sparse adjacency directly rather than building a heap-trix: BFS-based single
// linkage (connected components), CD-HIT (non-cascading seed absorption), UCLUST
// (nearest-seed joining), and greedy set-cover (degree-first seeding). Each is a
// single pass over every object's edge list, ported from the reference
// implementation's single_bfs.h, cd_hit.h, uclust.h and set_cover.h.
package cluster
