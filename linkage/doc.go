// Package linkage turns a heaptrix.Dendrogram into a flat cluster assignment by
// cutting it at a distance threshold. The cut walks the dendrogram iteratively with an
// explicit stack encoded as parent/visit-count arrays rather than recursion, the same
// approach the reference implementation's dendrogramToAssignments uses to avoid
// blowing the call stack on dendrograms with hundreds of millions of leaves.
package linkage
