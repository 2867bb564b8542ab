package cluster

import (
	"sort"

	"github.com/clusty-go/clusty/heaptrix"
)

// SetCover is the "MMseqs0" algorithm: objects are visited in descending order of
// neighbor count (a stable sort, so objects with equal degree keep their relative
// input order) and each unassigned one seeds a new cluster that immediately absorbs
// its unassigned neighbors at or below threshold.
func SetCover(src heaptrix.EdgeSource, objects []int, threshold float64, assignments []int) int {
	order := make([]int, len(objects))
	copy(order, objects)

	sort.SliceStable(order, func(i, j int) bool {
		return len(src.Neighbors(order[i])) > len(src.Neighbors(order[j]))
	})

	for i := range assignments {
		assignments[i] = noAssignment
	}

	clusterNumber := 0

	for _, obj := range order {
		if assignments[obj] != noAssignment {
			continue
		}

		assignments[obj] = clusterNumber

		for _, e := range src.Neighbors(obj) {
			other := int(e.ID)
			if e.Distance <= threshold && assignments[other] == noAssignment {
				assignments[other] = clusterNumber
			}
		}

		clusterNumber++
	}

	return clusterNumber
}
