package heaptrix

// Element is simultaneously a cell of the sparse distance matrix and a node of the
// binary heap: HeapIndex lets a heap operation locate and patch an element's slot
// directly instead of searching for it.
type Element struct {
	Value     float64
	Row       int32
	Column    int32
	HeapIndex int
}

// less orders elements by value first, then by row, then by column, matching
// element::operator< so ties resolve deterministically regardless of insertion order.
func less(l, r *Element) bool {
	if l.Value != r.Value {
		return l.Value < r.Value
	}
	if l.Row != r.Row {
		return l.Row < r.Row
	}
	return l.Column < r.Column
}
