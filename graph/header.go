package graph

import (
	"bytes"
	"fmt"
)

// isSeparator reports whether b delimits fields; both tab and comma are accepted on
// the same line so tsv and csv inputs are handled identically.
func isSeparator(b byte) bool { return b == '\t' || b == ',' }

// isNewline reports whether b terminates a row: '\n', '\r', or a NUL byte.
func isNewline(b byte) bool { return b == '\n' || b == '\r' || b == 0 }

// Header describes the resolved column layout of an input distance table: which two
// columns carry the edge endpoints, which carries the distance, and which (if any)
// carry an enabled filter predicate.
type Header struct {
	Columns      []string
	SequenceCols [2]int
	DistanceCol  int
	Filters      []ColumnFilter // indexed by column; zero value means "not a filter"
}

// ParseHeader tokenizes line (the first line of the input table) on commas and on
// whitespace (tabs or spaces), and
// resolves the endpoint and distance columns, defaulting to columns 0, 1 and 2 when
// idColumns/distanceColumn are empty. Named filter columns in columns2filters become
// enabled predicates at their resolved index. At least three columns are required.
func ParseHeader(line []byte, idColumns [2]string, distanceColumn string, columns2filters map[string]ColumnFilter) (*Header, error) {
	line = bytes.TrimRight(line, "\r\n")
	normalized := bytes.ReplaceAll(line, []byte{','}, []byte{' '})
	fields := bytes.Fields(normalized)

	if len(fields) < 3 {
		return nil, fmt.Errorf("graph: header requires at least 3 columns, got %d", len(fields))
	}

	columns := make([]string, len(fields))
	index := make(map[string]int, len(fields))

	for i, f := range fields {
		columns[i] = string(f)
		index[columns[i]] = i
	}

	h := &Header{Columns: columns, SequenceCols: [2]int{0, 1}, DistanceCol: 2}

	resolve := func(name string, fallback int) (int, error) {
		if name == "" {
			return fallback, nil
		}

		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("graph: header column %q not found", name)
		}

		return i, nil
	}

	var err error

	if h.SequenceCols[0], err = resolve(idColumns[0], 0); err != nil {
		return nil, err
	}

	if h.SequenceCols[1], err = resolve(idColumns[1], 1); err != nil {
		return nil, err
	}

	if h.SequenceCols[0] > h.SequenceCols[1] {
		h.SequenceCols[0], h.SequenceCols[1] = h.SequenceCols[1], h.SequenceCols[0]
	}

	if h.DistanceCol, err = resolve(distanceColumn, 2); err != nil {
		return nil, err
	}

	h.Filters = make([]ColumnFilter, len(columns))

	for name, f := range columns2filters {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("graph: filter column %q not found", name)
		}

		f.Enabled = true
		h.Filters[i] = f
	}

	return h, nil
}
