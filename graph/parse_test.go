package graph

import (
	"testing"

	"github.com/clusty-go/clusty/format"
	"github.com/stretchr/testify/require"
)

func mustHeader(t *testing.T, line string, filters map[string]ColumnFilter) *Header {
	t.Helper()

	h, err := ParseHeader([]byte(line), [2]string{}, "", filters)
	require.NoError(t, err)

	return h
}

func TestParseBlockBasic(t *testing.T) {
	h := mustHeader(t, "a\tb\td", nil)

	edges, err := parseBlock([]byte("s1\ts2\t0.5\ns3\ts4\t0.25\n"), h, format.TransformDistance, false, 0)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.Equal(t, "s1", string(edges[0].tokenA))
	require.Equal(t, "s2", string(edges[0].tokenB))
	require.InDelta(t, 0.5, edges[0].distance, 1e-9)
}

func TestParseBlockLastLineMissingNewline(t *testing.T) {
	h := mustHeader(t, "a\tb\td", nil)

	edges, err := parseBlock([]byte("s1\ts2\t0.5"), h, format.TransformDistance, false, 0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
}

func TestParseBlockAppliesTransform(t *testing.T) {
	h := mustHeader(t, "a\tb\td", nil)

	edges, err := parseBlock([]byte("s1\ts2\t0.9\n"), h, format.TransformSimilarity, false, 0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.InDelta(t, 0.1, edges[0].distance, 1e-9)
}

func TestParseBlockFilterRejectsRow(t *testing.T) {
	h := mustHeader(t, "a\tb\td\tlen", map[string]ColumnFilter{"len": {Min: 100, Max: 200}})

	edges, err := parseBlock([]byte("s1\ts2\t0.5\t50\ns3\ts4\t0.5\t150\n"), h, format.TransformDistance, false, 0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, "s3", string(edges[0].tokenA))
}

func TestParseBlockNumberedDropsSelfLoopEarly(t *testing.T) {
	h := mustHeader(t, "a\tb\td", nil)

	edges, err := parseBlock([]byte("7\t7\t0.1\n1\t2\t0.2\n"), h, format.TransformDistance, true, 0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, "1", string(edges[0].tokenA))
}

func TestParseBlockNamedKeepsSelfLoopToken(t *testing.T) {
	h := mustHeader(t, "a\tb\td", nil)

	// named mode defers the self-loop drop to the updater stage, so parseBlock
	// itself must still hand the row through
	edges, err := parseBlock([]byte("seqX\tseqX\t0.1\n"), h, format.TransformDistance, false, 0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
}

func TestParseBlockMalformedDistance(t *testing.T) {
	h := mustHeader(t, "a\tb\td", nil)

	_, err := parseBlock([]byte("s1\ts2\tnot-a-number\n"), h, format.TransformDistance, false, 0)
	require.Error(t, err)
}
