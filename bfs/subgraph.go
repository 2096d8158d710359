package bfs

import "github.com/katalvlaran/mcode/core"

// pairKey is an unordered node pair used to drop parallel edges.
type pairKey struct{ lo, hi core.NodeIx }

func keyOf(a, b core.NodeIx) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Induced returns the subgraph of g induced by set: every member becomes a
// node (in ascending handle order) and every edge of g with both endpoints in
// set is kept once per unordered pair, carrying the weight of the first such
// edge encountered.
// Complexity: O(V_set + E_set).
func Induced(g *core.Graph, set Set) *core.Graph {
	members := set.Sorted()
	sub := core.NewGraph(core.WithCapacity(len(members)))
	for _, ix := range members {
		sub.AddNode(g.ID(ix))
	}

	seen := make(map[pairKey]struct{})
	for _, ix := range members {
		for _, eix := range g.Node(ix).Edges {
			e := g.Edge(eix)
			if !set.Has(e.A) || !set.Has(e.B) {
				continue
			}
			k := keyOf(e.A, e.B)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			sub.AddEdge(g.ID(e.A), g.ID(e.B), e.W)
		}
	}

	return sub
}

// Subgraph returns the induced subgraph over node's entire connected
// component.
func Subgraph(g *core.Graph, node core.NodeIx) *core.Graph {
	return Induced(g, Reachable(g, node, Unbounded))
}

// Neighborhood returns the induced subgraph over node and its direct
// neighbours.
func Neighborhood(g *core.Graph, node core.NodeIx) *core.Graph {
	return Induced(g, Reachable(g, node, 0))
}
