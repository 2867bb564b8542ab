package render

import "sort"

// SortClustersBySize returns old2new, a mapping from a raw cluster id (as produced by
// a clustering algorithm) to a renumbered id where 0 is the largest cluster, ties
// broken by the original id (a stable sort over descending size). assignments must
// use dense cluster ids starting at 0.
func SortClustersBySize(assignments []int) (old2new []int, numClusters int) {
	if len(assignments) == 0 {
		return nil, 0
	}

	numClusters = 0
	for _, a := range assignments {
		if a+1 > numClusters {
			numClusters = a + 1
		}
	}

	type clusterSize struct {
		id   int
		size int
	}

	sizes := make([]clusterSize, numClusters)
	for i := range sizes {
		sizes[i].id = i
	}

	for _, a := range assignments {
		sizes[a].size++
	}

	sort.SliceStable(sizes, func(i, j int) bool { return sizes[i].size > sizes[j].size })

	old2new = make([]int, numClusters)
	for newID, s := range sizes {
		old2new[s.id] = newID
	}

	return old2new, numClusters
}
