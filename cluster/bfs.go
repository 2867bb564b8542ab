package cluster

import "github.com/clusty-go/clusty/heaptrix"

// noAssignment marks an object that has not yet been placed in a cluster.
const noAssignment = -1

// BFS assigns every object to the connected component reached by edges at or below
// threshold, visiting unassigned roots in the order given by objects. It is the
// "MMseqs1" algorithm: single linkage computed directly over the adjacency instead of
// through an agglomerative merge.
func BFS(src heaptrix.EdgeSource, objects []int, threshold float64, assignments []int) int {
	for i := range assignments {
		assignments[i] = noAssignment
	}

	clusterNumber := 0

	for _, obj := range objects {
		if assignments[obj] != noAssignment {
			continue
		}

		queue := []int{obj}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]

			if assignments[node] != noAssignment {
				continue
			}

			assignments[node] = clusterNumber

			for _, e := range src.Neighbors(node) {
				other := int(e.ID)
				if e.Distance <= threshold && assignments[other] == noAssignment {
					queue = append(queue, other)
				}
			}
		}

		clusterNumber++
	}

	return clusterNumber
}
