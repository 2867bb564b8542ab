package graph

import (
	"testing"

	"github.com/clusty-go/clusty/format"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesOptionsOverDefaults(t *testing.T) {
	cfg, err := New(
		WithNumbered(),
		WithNumThreads(8),
		WithIDColumns("src", "dst"),
		WithDistanceColumn("dist"),
		WithTransform(format.TransformSimilarity),
		WithColumnFilter("score", 0.1, 0.9),
	)
	require.NoError(t, err)

	require.False(t, cfg.Named)
	require.Equal(t, 8, cfg.NumThreads)
	require.Equal(t, [2]string{"src", "dst"}, cfg.IDColumns)
	require.Equal(t, "dist", cfg.DistanceColumn)
	require.Equal(t, format.TransformSimilarity, cfg.Transform)
	require.Equal(t, ColumnFilter{Min: 0.1, Max: 0.9, Enabled: true}, cfg.ColumnFilters["score"])
}

func TestNewWithNoOptionsMatchesDefaultConfig(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}
