package render

import (
	"bytes"
	"testing"

	"github.com/clusty-go/clusty/format"
	"github.com/stretchr/testify/require"
)

func TestSortClustersBySizeMapping(t *testing.T) {
	old2new, n := SortClustersBySize([]int{0, 1, 1, 1, 2, 2})
	require.Equal(t, 3, n)
	require.Equal(t, 0, old2new[1]) // largest (size 3) becomes cluster 0
	require.Equal(t, 1, old2new[2]) // size 2 becomes cluster 1
	require.Equal(t, 2, old2new[0]) // size 1 becomes cluster 2
}

func TestBuildRowsOrdersByClusterThenName(t *testing.T) {
	names := []string{"B", "A", "C", "D"}
	assignments := []int{0, 0, 1, 1}

	rows := BuildRows(names, assignments)

	require.Equal(t, []Row{
		{Name: "A", Cluster: 0},
		{Name: "B", Cluster: 0},
		{Name: "C", Cluster: 1},
		{Name: "D", Cluster: 1},
	}, rows)
}

func TestBuildRowsWithObjectsAppendsUnmatchedAsSingletons(t *testing.T) {
	index := map[string]int{"A": 0, "B": 1}
	resolve := func(name string) (int, bool) {
		id, ok := index[name]
		return id, ok
	}

	rows := BuildRowsWithObjects([]string{"A", "B", "Z"}, resolve, []int{0, 0})

	require.Len(t, rows, 3)
	require.Equal(t, "A", rows[0].Name)
	require.Equal(t, "B", rows[1].Name)
	require.Equal(t, "Z", rows[2].Name)
	require.Equal(t, 1, rows[2].Cluster) // new singleton cluster after the one real cluster
}

func TestFillRepresentativesUsesFirstRowPerCluster(t *testing.T) {
	rows := []Row{{Name: "A", Cluster: 0}, {Name: "B", Cluster: 0}, {Name: "C", Cluster: 1}}

	reps := FillRepresentatives(rows)
	require.Equal(t, "A", reps[0].Representative)
	require.Equal(t, "A", reps[1].Representative)
	require.Equal(t, "C", reps[2].Representative)
}

func TestWriteRowsProducesTabSeparatedTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRows(&buf, format.SeparatorTab, []Row{{Name: "A", Cluster: 0}, {Name: "B", Cluster: 1}})
	require.NoError(t, err)
	require.Equal(t, "object\tcluster\nA\t0\nB\t1\n", buf.String())
}
