package heaptrix

import (
	"math"

	"github.com/clusty-go/clusty/internal/arena"
)

// noHeapIndex marks an element that has been allocated but not yet placed in the heap.
const noHeapIndex = -1

// maxDistance is the sentinel the aggregation rules treat as "no edge", mirroring the
// reference implementation's MAX_DOUBLE (distinct from +Inf, which is itself a valid
// input sentinel for "beyond every filter").
const maxDistance = math.MaxFloat64

// Neighbor is one entry of a row's adjacency, as handed to ReadMatrix.
type Neighbor struct {
	ID       int32
	Distance float64
}

// EdgeSource supplies the sparse adjacency a Trix is built from. Any type exposing
// these two methods satisfies it, so the graph package's loaded adjacency can be
// passed in directly without heaptrix importing it.
type EdgeSource interface {
	NumObjects() int
	Neighbors(i int) []Neighbor
}

// Group is one merge recorded during clustering: the new node id, the two rows merged
// to produce it, and the distance at which they were joined.
type Group struct {
	ID       int
	Left     int
	Right    int
	Distance float64
}

// Dendrogram is the ordered sequence of merges performed by Cluster.
type Dendrogram struct {
	Groups []Group
}

// Max implements complete-linkage aggregation: the distance between merged groups is
// the larger of the two candidate distances.
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Min implements single-linkage aggregation: the distance between merged groups is
// the smaller of the two candidate distances.
func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Trix is the sparse matrix/heap pair that single- and complete-linkage clustering
// merge their way through.
type Trix struct {
	matrix     trixMatrix
	heap       trixHeap
	arena      *arena.Arena[Element]
	aggregate  func(a, b float64) float64
	dendrogram []Group
}

// New creates a Trix that aggregates merged distances using the given rule (Max for
// complete linkage, Min for single linkage).
func New(aggregate func(a, b float64) float64) *Trix {
	return &Trix{
		arena:     arena.New[Element](0),
		aggregate: aggregate,
	}
}

func (t *Trix) allocate(row, column, heapIndex int, value float64) *Element {
	p := t.arena.Alloc()
	p.Row = int32(row)
	p.Column = int32(column)
	p.HeapIndex = heapIndex
	p.Value = value
	return p
}

// AddValue records a symmetric edge between w and k with the given distance, unless
// the cell is already occupied.
func (t *Trix) AddValue(w, k int, value float64) {
	if w > k {
		w, k = k, w
	}

	if t.matrix.existsCell(w, k) {
		return
	}

	if !t.matrix.existsRow(w) {
		t.matrix.addRow(w)
	}
	if !t.matrix.existsRow(k) {
		t.matrix.addRow(k)
	}

	p := t.allocate(w, k, t.heap.size(), value)
	t.matrix.rows[w].values.insert(uint64(k), p)
	t.matrix.rows[k].values.insert(uint64(w), p)
	t.heap.pushBack(p)
}

// ReadMatrix loads every finite, non-self edge from src and heapifies the result.
func (t *Trix) ReadMatrix(src EdgeSource) {
	t.matrix.rows = nil
	t.heap.items = nil

	n := src.NumObjects()
	for i := 0; i < n; i++ {
		for _, e := range src.Neighbors(i) {
			if e.Distance == maxDistance || math.IsInf(e.Distance, 1) || int(e.ID) == i {
				continue
			}
			t.AddValue(i, int(e.ID), e.Distance)
		}
	}

	t.heap.makeHeap()
}

// Cluster repeatedly merges the two rows joined by the globally minimal edge until one
// row remains or the heap is exhausted, recording every merge in the returned
// Dendrogram. It is the direct port of the reference implementation's do_clustering.
func (t *Trix) Cluster() Dendrogram {
	idOfNextGroup := t.matrix.getMaxRow() + 1
	numberOfObjects := idOfNextGroup

	var mergedColumn []*Element
	var insertBuffer []*Element

	for numberOfObjects > 1 && !t.heap.empty() {
		pMin := t.heap.top()
		rMin, cMin := int(pMin.Row), int(pMin.Column)
		minimalDistance := pMin.Value

		if rMin > cMin {
			rMin, cMin = cMin, rMin
		}

		t.dendrogram = append(t.dendrogram, Group{
			ID:       idOfNextGroup,
			Left:     t.matrix.rows[rMin].id,
			Right:    t.matrix.rows[cMin].id,
			Distance: minimalDistance,
		})

		mergedRow := matrixRow{id: idOfNextGroup, values: newRowMap()}
		mergedColumn = mergedColumn[:0]
		insertBuffer = insertBuffer[:0]

		t.matrix.rows[rMin].values.each(func(columnID uint64, p *Element) {
			if int(columnID) == cMin {
				return
			}

			var merged float64
			if other := t.matrix.rows[cMin].values.find(columnID); other != nil {
				merged = t.aggregate(p.Value, other.Value)
			} else {
				merged = t.aggregate(p.Value, maxDistance)
				if merged == maxDistance {
					return
				}
			}

			pNew := t.allocate(int(columnID), idOfNextGroup, noHeapIndex, merged)
			insertBuffer = append(insertBuffer, pNew)
			mergedRow.values.insert(columnID, pNew)
			mergedColumn = append(mergedColumn, pNew)
		})

		t.matrix.rows[cMin].values.each(func(columnID uint64, p *Element) {
			if int(columnID) == rMin {
				return
			}
			if t.matrix.rows[rMin].values.find(columnID) != nil {
				return // already merged above
			}

			merged := t.aggregate(maxDistance, p.Value)
			if merged == maxDistance {
				return
			}

			pNew := t.allocate(int(columnID), idOfNextGroup, noHeapIndex, merged)
			insertBuffer = append(insertBuffer, pNew)
			mergedRow.values.insert(columnID, pNew)
			mergedColumn = append(mergedColumn, pNew)
		})

		t.matrix.addRow(idOfNextGroup)
		t.matrix.rows[idOfNextGroup] = mergedRow

		for _, p := range mergedColumn {
			t.matrix.rows[p.Row].values.insert(uint64(p.Column), p)
		}

		t.retireRow(rMin, &insertBuffer)
		t.retireRow(cMin, &insertBuffer)

		t.matrix.removeRow(rMin)
		t.matrix.removeRow(cMin)

		numberOfObjects--
		idOfNextGroup++

		for _, e := range insertBuffer {
			t.heap.insert(e)
		}
		insertBuffer = insertBuffer[:0]
	}

	t.arena.Release()

	return Dendrogram{Groups: t.dendrogram}
}

// retireRow removes every element still touching rowID from the heap (replacing it
// in place with a buffered new element when one is available, to avoid a separate
// heap-remove pass) and from its neighbor's row, then frees the element back to the
// arena.
func (t *Trix) retireRow(rowID int, insertBuffer *[]*Element) {
	t.matrix.rows[rowID].values.each(func(colID uint64, p *Element) {
		otherEnd := int(p.Column)
		if otherEnd == rowID {
			otherEnd = int(p.Row)
		}

		buf := *insertBuffer
		if n := len(buf); n > 0 {
			t.heap.replace(p, buf[n-1])
			*insertBuffer = buf[:n-1]
		} else {
			t.heap.remove(p)
		}

		t.matrix.rows[otherEnd].values.erase(uint64(rowID))
		t.arena.Free(p)
	})
}
