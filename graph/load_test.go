package graph

import (
	"strings"
	"testing"

	"github.com/clusty-go/clusty/format"
	"github.com/stretchr/testify/require"
)

func loadString(t *testing.T, headerLine, body string, cfg LoaderConfig) (*Adjacency, Resolver) {
	t.Helper()

	h, err := ParseHeader([]byte(headerLine), cfg.IDColumns, cfg.DistanceColumn, cfg.ColumnFilters)
	require.NoError(t, err)

	adj, resolver, _, err := Load(strings.NewReader(body), h, cfg)
	require.NoError(t, err)

	return adj, resolver
}

func idOf(t *testing.T, r Resolver, name string) int32 {
	t.Helper()

	id, ok := r.Resolve([]byte(name))
	require.True(t, ok)

	return id
}

// TestLoadSingleLinkageChain loads the three-edge chain A-B-C-D and checks that the
// resulting adjacency carries every edge symmetrically with the expected distances.
func TestLoadSingleLinkageChain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumThreads = 4

	adj, r := loadString(t, "a b dist", "A\tB\t0.1\nB\tC\t0.1\nC\tD\t0.1\n", cfg)

	require.Equal(t, 4, adj.NumObjects())
	require.Equal(t, 3, adj.NumEdges())

	a, b, c, d := idOf(t, r, "A"), idOf(t, r, "B"), idOf(t, r, "C"), idOf(t, r, "D")

	requireNeighbor(t, adj, a, b, 0.1)
	requireNeighbor(t, adj, b, a, 0.1)
	requireNeighbor(t, adj, b, c, 0.1)
	requireNeighbor(t, adj, c, d, 0.1)
	require.Empty(t, adj.Neighbors(int(d))[1:])
}

// TestLoadFilterAndSimilarityTransform mirrors the filter-plus-transform scenario:
// only the row with q inside [0,20] survives, and the surviving distance is
// 1-similarity.
func TestLoadFilterAndSimilarityTransform(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transform = format.TransformSimilarity
	cfg.ColumnFilters = map[string]ColumnFilter{"q": {Min: 0, Max: 20}}

	adj, r := loadString(t, "x y sim q", "A\tB\t0.9\t10\nA\tC\t0.2\t50\n", cfg)

	a, b := idOf(t, r, "A"), idOf(t, r, "B")

	require.Equal(t, 2, adj.NumObjects(), "C's row is never filtered into existence")
	requireNeighbor(t, adj, a, b, 0.1)
}

// TestLoadNamedSelfLoopInflatesNodeCount exercises the named-loader Open Question:
// a self-loop-only row still registers its identifier even though the edge itself
// never survives into the adjacency.
func TestLoadNamedSelfLoopInflatesNodeCount(t *testing.T) {
	cfg := DefaultConfig()

	adj, r := loadString(t, "a b dist", "A\tA\t0.1\n", cfg)

	require.Equal(t, 1, adj.NumObjects())
	require.Equal(t, 0, adj.NumEdges())
	require.Empty(t, adj.Neighbors(int(idOf(t, r, "A"))))
}

// TestLoadNumberedSelfLoopDropped checks the numbered loader's contrasting behavior: a
// pure self-loop row is dropped before its identifier reaches the resolver, so 7 is
// registered only through the 7-9 row.
func TestLoadNumberedSelfLoopDropped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Named = false

	adj, _ := loadString(t, "a b dist", "7\t7\t0.1\n7\t9\t0.2\n", cfg)

	require.Equal(t, 2, adj.NumObjects())
	require.Equal(t, 1, adj.NumEdges())
}

func requireNeighbor(t *testing.T, adj *Adjacency, from, to int32, dist float64) {
	t.Helper()

	for _, n := range adj.Neighbors(int(from)) {
		if n.ID == to {
			require.InDelta(t, dist, n.Distance, 1e-9)
			return
		}
	}

	t.Fatalf("no edge %d -> %d in adjacency", from, to)
}
