package linkage

import "github.com/clusty-go/clusty/heaptrix"

// Node is one dendrogram entry: positions below numObjects are original leaves,
// positions at or above it are internal nodes whose First/Second point at the two
// children merged to produce them.
type Node struct {
	First    int
	Second   int
	Distance float64
}

// BuildDendrogram flattens a heaptrix.Dendrogram into the position-indexed node array
// CutThreshold expects: the first numObjects slots are implicit leaves (zero Node),
// followed by one entry per recorded merge in merge order, matching the reference
// implementation's simplified makeDendrogram for the heap-trix linkage (as opposed to
// the lambda/pi SLINK variant used elsewhere in the original codebase).
func BuildDendrogram(d heaptrix.Dendrogram, numObjects int) []Node {
	nodes := make([]Node, numObjects, numObjects+len(d.Groups))
	for _, g := range d.Groups {
		nodes = append(nodes, Node{First: g.Left, Second: g.Right, Distance: g.Distance})
	}
	return nodes
}
