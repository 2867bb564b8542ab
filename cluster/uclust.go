package cluster

import (
	"math"

	"github.com/clusty-go/clusty/heaptrix"
)

// UClust treats objects[0] as the first seed, then for every later object in order
// joins it to the closest existing seed among its neighbors if that seed is within
// threshold, or else makes the object a new seed itself.
func UClust(src heaptrix.EdgeSource, objects []int, threshold float64, assignments []int) int {
	if len(objects) == 0 {
		return 0
	}

	seeds := make(map[int]int)

	first := objects[0]
	assignments[first] = 0
	seeds[first] = 0

	for i := 1; i < len(objects); i++ {
		obj := objects[i]

		closestDistance := math.MaxFloat64
		closestSeed := -1

		for _, e := range src.Neighbors(obj) {
			if clusterID, ok := seeds[int(e.ID)]; ok && e.Distance < closestDistance {
				closestDistance = e.Distance
				closestSeed = clusterID
			}
		}

		if closestSeed != -1 && closestDistance <= threshold {
			assignments[obj] = closestSeed
		} else {
			clusterID := len(seeds)
			seeds[obj] = clusterID
			assignments[obj] = clusterID
		}
	}

	return len(seeds)
}
