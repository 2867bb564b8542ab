//go:build !noleiden

package leiden

import (
	"fmt"
	"math/rand"

	"github.com/clusty-go/clusty/heaptrix"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
)

// Available reports whether the gonum-backed adapter was compiled in.
const Available = true

// Cluster partitions src into communities via gonum's modularity optimizer, converting
// each distance into the similarity weight (1-d) the reference implementation's
// load_graph uses. assignments must have length src.NumObjects(); it receives one
// community id per object and the number of communities found is returned.
func Cluster(src heaptrix.EdgeSource, objects []int, params Params, assignments []int) (int, error) {
	n := src.NumObjects()

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}

	for i := 0; i < n; i++ {
		for _, e := range src.Neighbors(i) {
			j := int(e.ID)
			if j <= i {
				continue
			}

			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(i), T: simple.Node(j), W: 1 - e.Distance})
		}
	}

	reduced := community.Modularize(g, params.Resolution, rand.NewSource(1))
	if reduced == nil {
		return 0, fmt.Errorf("leiden: modularity optimization produced no structure")
	}

	communities := reduced.Structure()

	for id, nodes := range communities {
		for _, node := range nodes {
			assignments[node.ID()] = id
		}
	}

	return len(communities), nil
}
