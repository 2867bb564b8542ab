package graph

import (
	"github.com/clusty-go/clusty/format"
	"github.com/clusty-go/clusty/internal/options"
)

// LoaderConfig configures a Load call: identifier mode, thread count, column
// resolution and the distance transform/filters applied while parsing.
type LoaderConfig struct {
	Named          bool
	NumThreads     int
	IDColumns      [2]string
	DistanceColumn string
	Transform      format.DistanceTransform
	ColumnFilters  map[string]ColumnFilter
}

// Option configures a LoaderConfig, following the same functional-options pattern
// used throughout the module (internal/options).
type Option = options.Option[*LoaderConfig]

// DefaultConfig returns a LoaderConfig with the positional-default column resolution,
// the identity distance transform, named-identifier mode and 4 worker threads.
func DefaultConfig() LoaderConfig {
	return LoaderConfig{
		Named:      true,
		NumThreads: 4,
		Transform:  format.TransformDistance,
	}
}

// New builds a LoaderConfig by applying opts, in order, over DefaultConfig.
func New(opts ...Option) (LoaderConfig, error) {
	cfg := DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return LoaderConfig{}, err
	}

	return cfg, nil
}

// WithNumbered selects the numbered (non-negative integer) identifier mode in place
// of the default named (arbitrary byte string) mode.
func WithNumbered() Option {
	return options.NoError[*LoaderConfig](func(c *LoaderConfig) { c.Named = false })
}

// WithNumThreads sets the total requested thread budget T (1 loader + P parsers +
// 1 mapper + U updaters, with P and U each defaulting to max(1, (T-2)/2)).
func WithNumThreads(n int) Option {
	return options.NoError[*LoaderConfig](func(c *LoaderConfig) { c.NumThreads = n })
}

// WithIDColumns overrides the default first-two-columns endpoint resolution by name.
func WithIDColumns(a, b string) Option {
	return options.NoError[*LoaderConfig](func(c *LoaderConfig) { c.IDColumns = [2]string{a, b} })
}

// WithDistanceColumn overrides the default third-column distance resolution by name.
func WithDistanceColumn(name string) Option {
	return options.NoError[*LoaderConfig](func(c *LoaderConfig) { c.DistanceColumn = name })
}

// WithTransform sets the rule used to convert a raw distance-column value into a
// distance (identity, similarity, or percent-similarity).
func WithTransform(t format.DistanceTransform) Option {
	return options.NoError[*LoaderConfig](func(c *LoaderConfig) { c.Transform = t })
}

// WithColumnFilter adds (or replaces) a named, enabled [min, max] filter predicate.
func WithColumnFilter(column string, min, max float64) Option {
	return options.NoError[*LoaderConfig](func(c *LoaderConfig) {
		if c.ColumnFilters == nil {
			c.ColumnFilters = make(map[string]ColumnFilter)
		}

		c.ColumnFilters[column] = ColumnFilter{Min: min, Max: max, Enabled: true}
	})
}
