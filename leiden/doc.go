// Package leiden adapts a clusty sparse adjacency into a modularity-optimizing
// community partition, the Go-ecosystem substitute for the reference implementation's
// igraph-backed Leiden algorithm (leiden.h). gonum's graph/community package
// implements the closely related Louvain modularity optimization rather than Leiden
// itself; no Go Leiden implementation exists among the module's dependencies, and
// gonum is the only community-detection library the project already depends on, so it
// stands in for the "leiden" algorithm slot.
//
// The adapter is isolated behind the noleiden build tag the same way the reference
// implementation isolates igraph behind NO_LEIDEN: build with -tags noleiden to get a
// binary that reports the algorithm unavailable instead of linking gonum's community
// package, and the rest of clusty builds and runs identically either way.
package leiden

// Params mirrors the reference implementation's LeidenParams.
type Params struct {
	// Resolution scales the modularity objective; values above 1 favor more, smaller
	// communities.
	Resolution float64
	// NumIterations is not read by Cluster: the gonum optimizer it calls takes no
	// iteration limit.
	NumIterations int
}

// DefaultParams matches the reference implementation's defaults.
func DefaultParams() Params {
	return Params{Resolution: 0.7, NumIterations: 2}
}
