package graph

import (
	"math"
	"sort"
	"sync"

	"github.com/clusty-go/clusty/heaptrix"
)

// Adjacency is the sparse, symmetric, per-row neighbor list a Load produces: row i
// holds every (j, d) edge touching local index i. Rows are unordered and may contain
// duplicates until Finalize runs; afterward each row is strictly sorted by neighbor
// index with duplicates collapsed to the minimum distance seen.
type Adjacency struct {
	rows     [][]heaptrix.Neighbor
	numEdges int
}

// NumObjects implements heaptrix.EdgeSource (and the identical contract cluster's
// algorithms expect).
func (a *Adjacency) NumObjects() int { return len(a.rows) }

// Neighbors implements heaptrix.EdgeSource.
func (a *Adjacency) Neighbors(i int) []heaptrix.Neighbor { return a.rows[i] }

// NumEdges returns the number of undirected edges. Valid only after Finalize.
func (a *Adjacency) NumEdges() int { return a.numEdges }

// extend grows the outer row slice to hold n objects, leaving new rows empty. Called
// only by the mapper goroutine, and only while every updater is idle (the loader
// pipeline enforces this with the active-updaters semaphore before calling extend),
// since updaters hold slice headers into a.rows concurrently otherwise.
func (a *Adjacency) extend(n int) {
	if n <= len(a.rows) {
		return
	}

	grown := make([][]heaptrix.Neighbor, n)
	copy(grown, a.rows)
	a.rows = grown
}

// appendEdge appends (to, d) to row i's neighbor list, growing it by a factor of 1.5
// from an initial capacity of 16 when full, the same reserve policy the updaters use.
func (a *Adjacency) appendEdge(i int32, to int32, d float64) {
	row := a.rows[i]

	if len(row) == cap(row) {
		newCap := 16
		if cap(row) > 0 {
			newCap = cap(row) + cap(row)/2
		}

		grown := make([]heaptrix.Neighbor, len(row), newCap)
		copy(grown, row)
		row = grown
	}

	a.rows[i] = append(row, heaptrix.Neighbor{ID: to, Distance: d})
}

// Finalize sorts and deduplicates every row in parallel across numWorkers
// residue classes (row i owned by worker i mod numWorkers), then computes NumEdges.
// Must run exactly once, after loading completes and before any clustering algorithm
// reads the adjacency.
func (a *Adjacency) Finalize(numWorkers int) {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup

	for tid := 0; tid < numWorkers; tid++ {
		wg.Add(1)

		go func(tid int) {
			defer wg.Done()

			for i := tid; i < len(a.rows); i += numWorkers {
				a.rows[i] = finalizeRow(a.rows[i])
			}
		}(tid)
	}

	wg.Wait()

	total := 0
	for _, row := range a.rows {
		total += len(row)
	}

	a.numEdges = total / 2
}

// finalizeRow sorts row by ascending neighbor id (ties broken by ascending distance,
// so the minimum distance survives deduplication) and collapses duplicate ids,
// keeping the first (smallest-distance) occurrence.
func finalizeRow(row []heaptrix.Neighbor) []heaptrix.Neighbor {
	if len(row) < 2 {
		return row
	}

	sort.Slice(row, func(x, y int) bool {
		if row[x].ID != row[y].ID {
			return row[x].ID < row[y].ID
		}

		return row[x].Distance < row[y].Distance
	})

	kept := row[:1]

	for i := 1; i < len(row); i++ {
		if row[i].ID != kept[len(kept)-1].ID {
			kept = append(kept, row[i])
		}
	}

	return kept
}

// DistanceHistogram buckets every edge distance (counted once per directed row
// appearance, i.e. twice per undirected edge) into 0.001-wide bins from 0 up to 0.05
// plus an overflow bin, mirroring the loader's verbose-mode diagnostic. bounds[i] is
// the exclusive upper edge of bin i.
func (a *Adjacency) DistanceHistogram() (bounds []float64, counts []int) {
	const width = 0.001

	for k := 1; k <= 50; k++ {
		bounds = append(bounds, float64(k)*width)
	}

	bounds = append(bounds, math.MaxFloat64)
	counts = make([]int, len(bounds))

	for _, row := range a.rows {
		for _, e := range row {
			for i, b := range bounds {
				if e.Distance < b {
					counts[i]++
					break
				}
			}
		}
	}

	return bounds, counts
}
