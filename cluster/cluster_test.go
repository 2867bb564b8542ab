package cluster

import (
	"testing"

	"github.com/clusty-go/clusty/heaptrix"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	neighbors [][]heaptrix.Neighbor
}

func (f fakeSource) NumObjects() int { return len(f.neighbors) }

func (f fakeSource) Neighbors(i int) []heaptrix.Neighbor { return f.neighbors[i] }

// A chain 0-1-2-3 with every edge at 0.1: under the 0.5 threshold the tests use, BFS
// cascades along the whole chain into one cluster, while CD-HIT's single-hop
// absorption, UCLUST's nearest-seed joining and set-cover's degree-first seeding each
// stop at two clusters.
func chain() fakeSource {
	return fakeSource{neighbors: [][]heaptrix.Neighbor{
		{{ID: 1, Distance: 0.1}},
		{{ID: 0, Distance: 0.1}, {ID: 2, Distance: 0.1}},
		{{ID: 1, Distance: 0.1}, {ID: 3, Distance: 0.1}},
		{{ID: 2, Distance: 0.1}},
	}}
}

func TestBFSConnectsWholeChain(t *testing.T) {
	src := chain()
	objects := []int{0, 1, 2, 3}
	assignments := make([]int, 4)

	n := BFS(src, objects, 0.5, assignments)
	require.Equal(t, 1, n)
	for _, c := range assignments {
		require.Equal(t, assignments[0], c)
	}
}

func TestCdHitDoesNotCascade(t *testing.T) {
	src := chain()
	objects := []int{0, 1, 2, 3}
	assignments := make([]int, 4)

	// 0 seeds and absorbs 1. 2 is not a direct neighbor of 0, so it becomes its own
	// seed and absorbs 3 in turn: two clusters, not one.
	n := CdHit(src, objects, 0.5, assignments)
	require.Equal(t, 2, n)
	require.Equal(t, assignments[0], assignments[1])
	require.Equal(t, assignments[2], assignments[3])
	require.NotEqual(t, assignments[0], assignments[2])
}

func TestUClustFirstObjectIsAlwaysASeed(t *testing.T) {
	src := chain()
	objects := []int{0, 1, 2, 3}
	assignments := make([]int, 4)

	n := UClust(src, objects, 0.5, assignments)
	require.Equal(t, 0, assignments[0])
	require.Equal(t, 2, n)
}

func TestSetCoverPrefersHighestDegreeSeed(t *testing.T) {
	// nodes 1 and 2 are tied for the highest degree (2); the stable sort keeps 1
	// ahead of 2 since it appears first in the input order, so 1 seeds a cluster
	// that absorbs both 0 and 2, leaving 3 to seed a second cluster on its own.
	src := chain()
	objects := []int{0, 1, 2, 3}
	assignments := make([]int, 4)

	n := SetCover(src, objects, 0.5, assignments)
	require.Equal(t, 2, n)
	require.Equal(t, assignments[1], assignments[0])
	require.Equal(t, assignments[1], assignments[2])
	require.NotEqual(t, assignments[1], assignments[3])
}
