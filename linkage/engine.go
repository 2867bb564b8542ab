package linkage

import "github.com/clusty-go/clusty/heaptrix"

// Run performs agglomerative clustering over src using the given aggregation rule
// (heaptrix.Min for single linkage, heaptrix.Max for complete linkage), then cuts the
// resulting dendrogram at threshold. assignments must have length src.NumObjects().
func Run(src heaptrix.EdgeSource, aggregate func(a, b float64) float64, threshold float64, assignments []int) int {
	tx := heaptrix.New(aggregate)
	tx.ReadMatrix(src)

	d := tx.Cluster()
	nodes := BuildDendrogram(d, src.NumObjects())

	return CutThreshold(nodes, src.NumObjects(), threshold, assignments)
}

// SingleLinkage clusters src by single linkage: two groups merge at the minimum
// distance between any of their members.
func SingleLinkage(src heaptrix.EdgeSource, threshold float64, assignments []int) int {
	return Run(src, heaptrix.Min, threshold, assignments)
}

// CompleteLinkage clusters src by complete linkage: two groups merge at the maximum
// distance between any of their members.
func CompleteLinkage(src heaptrix.EdgeSource, threshold float64, assignments []int) int {
	return Run(src, heaptrix.Max, threshold, assignments)
}
