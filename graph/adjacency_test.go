package graph

import (
	"testing"

	"github.com/clusty-go/clusty/heaptrix"
	"github.com/stretchr/testify/require"
)

func TestAdjacencyFinalizeDedupKeepsMinDistance(t *testing.T) {
	a := &Adjacency{}
	a.extend(3)

	a.appendEdge(0, 1, 0.5)
	a.appendEdge(0, 1, 0.2)
	a.appendEdge(0, 2, 0.9)
	a.appendEdge(1, 0, 0.5)
	a.appendEdge(1, 0, 0.2)
	a.appendEdge(2, 0, 0.9)

	a.Finalize(2)

	require.Equal(t, 3, a.NumObjects())
	require.Equal(t, []heaptrix.Neighbor{{ID: 1, Distance: 0.2}, {ID: 2, Distance: 0.9}}, a.Neighbors(0))
	require.Equal(t, 2, a.NumEdges())
}

func TestAdjacencyFinalizeSortsByID(t *testing.T) {
	a := &Adjacency{}
	a.extend(4)

	a.appendEdge(0, 3, 0.1)
	a.appendEdge(0, 1, 0.2)
	a.appendEdge(0, 2, 0.3)

	a.Finalize(1)

	ids := make([]int32, len(a.Neighbors(0)))
	for i, n := range a.Neighbors(0) {
		ids[i] = n.ID
	}
	require.Equal(t, []int32{1, 2, 3}, ids)
}

func TestAdjacencyExtendPreservesExistingRows(t *testing.T) {
	a := &Adjacency{}
	a.extend(1)
	a.appendEdge(0, 0, 0)
	a.extend(3)

	require.Equal(t, 3, a.NumObjects())
	require.Len(t, a.Neighbors(0), 1)
	require.Empty(t, a.Neighbors(1))
}

func TestAdjacencyDistanceHistogram(t *testing.T) {
	a := &Adjacency{}
	a.extend(2)
	a.appendEdge(0, 1, 0.0005)
	a.appendEdge(1, 0, 10.0)

	bounds, counts := a.DistanceHistogram()
	require.Equal(t, len(bounds), len(counts))
	require.Equal(t, 1, counts[0])
	require.Equal(t, 1, counts[len(counts)-1])
}
