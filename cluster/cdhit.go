package cluster

import "github.com/clusty-go/clusty/heaptrix"

// CdHit assigns each unassigned object, in the order given by objects, as the seed of
// a new cluster and immediately absorbs its unassigned neighbors at or below
// threshold. Unlike BFS, absorption does not cascade beyond a seed's direct
// neighbors, so a seed's neighbors never themselves recruit further members.
func CdHit(src heaptrix.EdgeSource, objects []int, threshold float64, assignments []int) int {
	for i := range assignments {
		assignments[i] = noAssignment
	}

	clusterID := 0

	for _, obj := range objects {
		if assignments[obj] != noAssignment {
			continue
		}

		assignments[obj] = clusterID

		for _, e := range src.Neighbors(obj) {
			other := int(e.ID)
			if e.Distance <= threshold && assignments[other] == noAssignment {
				assignments[other] = clusterID
			}
		}

		clusterID++
	}

	return clusterID
}
