package graph

// ColumnFilter is a per-column inclusive [Min, Max] predicate applied to a numeric
// column during parsing. A disabled filter always passes.
type ColumnFilter struct {
	Min, Max float64
	Enabled  bool
}

func (f ColumnFilter) accepts(v float64) bool {
	if !f.Enabled {
		return true
	}

	return v >= f.Min && v <= f.Max
}
