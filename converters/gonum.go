package converters

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mcode/core"
)

// ToGonum returns an unweighted gonum copy of g.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	out := simple.NewUndirectedGraph()
	for i := 0; i < g.NodeCount(); i++ {
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.A == e.B || out.HasEdgeBetween(int64(e.A), int64(e.B)) {
			continue
		}
		out.SetEdge(simple.Edge{F: simple.Node(e.A), T: simple.Node(e.B)})
	}

	return out
}

// ToWeightedGonum returns a weighted gonum copy of g; edge weights are the
// interaction scores as float64. Self weight is 0 and absent edges weigh +Inf
// so that path algorithms treat them as missing.
func ToWeightedGonum(g *core.Graph, self, absent float64) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(self, absent)
	for i := 0; i < g.NodeCount(); i++ {
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		if e.A == e.B || out.HasEdgeBetween(int64(e.A), int64(e.B)) {
			continue
		}
		out.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(e.A), T: simple.Node(e.B), W: float64(e.W)})
	}

	return out
}

// Handles maps gonum nodes produced from a converted graph back to handles.
func Handles(nodes []graph.Node) []core.NodeIx {
	out := make([]core.NodeIx, len(nodes))
	for i, n := range nodes {
		out[i] = core.NodeIx(n.ID())
	}
	return out
}
