package graph

import (
	"bytes"

	"github.com/clusty-go/clusty/format"
	"github.com/clusty-go/clusty/numtext"
)

// rawEdge is one accepted input row between parsing and mapping: the two endpoint
// tokens (copied out of the input buffer so the buffer can be recycled immediately)
// and the transformed distance.
type rawEdge struct {
	tokenA, tokenB []byte
	distance       float64
}

// parseBlock splits data (already trimmed by the loader to end on a full line) into
// rows and parses each into a rawEdge, applying h's column layout, the distance
// transform, and every enabled filter. Self-loops (byte-identical endpoint tokens)
// are dropped here only when numbered is true: the numbered variant's identifiers
// are resolved from the very tokens being compared, so an early textual-equality
// check is exact, while the named variant still needs the mapper to register both
// tokens as identifiers even when the row turns out to be a self-loop.
func parseBlock(data []byte, h *Header, transform format.DistanceTransform, numbered bool, rowOffset int64) ([]rawEdge, error) {
	var edges []rawEdge

	nColumns := len(h.Columns)
	rowIndex := rowOffset

	for len(data) > 0 {
		lineEnd := indexByteFunc(data, isNewline)
		line := data
		if lineEnd >= 0 {
			line = data[:lineEnd]
		}

		rowIndex++

		edge, accepted, err := parseLine(line, h, transform, nColumns, rowIndex)
		if err != nil {
			return nil, err
		}

		if accepted && !(numbered && bytes.Equal(edge.tokenA, edge.tokenB)) {
			edges = append(edges, edge)
		}

		if lineEnd < 0 {
			break
		}

		rest := data[lineEnd:]
		skip := 0
		for skip < len(rest) && isNewline(rest[skip]) {
			skip++
		}

		data = rest[skip:]
	}

	return edges, nil
}

func parseLine(line []byte, h *Header, transform format.DistanceTransform, nColumns int, rowIndex int64) (rawEdge, bool, error) {
	var edge rawEdge

	p := line

	for c := 0; c < nColumns; c++ {
		var field []byte

		idx := indexByteFunc(p, isSeparator)
		if idx < 0 {
			if c != nColumns-1 {
				return edge, false, numtext.NewParseError(rowIndex, h.Columns[c], line)
			}

			field = p
			p = nil
		} else {
			field = p[:idx]
			p = p[idx+1:]
		}

		switch {
		case c == h.SequenceCols[0]:
			edge.tokenA = append([]byte(nil), field...)
		case c == h.SequenceCols[1]:
			edge.tokenB = append([]byte(nil), field...)
		case c == h.DistanceCol || h.Filters[c].Enabled:
			value, n, ok := numtext.ParseFloat(field)
			if !ok || n != len(field) {
				return edge, false, numtext.NewParseError(rowIndex, h.Columns[c], line)
			}

			if c == h.DistanceCol {
				edge.distance = transform.Apply(value)
			}

			if !h.Filters[c].accepts(value) {
				return edge, false, nil
			}
		}
	}

	return edge, true, nil
}

// indexByteFunc returns the index of the first byte in b for which pred is true, or
// -1. It operates byte-by-byte rather than through bytes.IndexFunc's rune decoding,
// since separators and newlines are always single ASCII bytes and the input may
// otherwise contain arbitrary non-UTF-8 identifier bytes.
func indexByteFunc(b []byte, pred func(byte) bool) int {
	for i, c := range b {
		if pred(c) {
			return i
		}
	}

	return -1
}
