// File: methods_edges.go
// Role: Edge insertion and edge-level queries.

package core

// AddEdge registers both endpoints, appends a new edge to the edge table and
// its handle to both adjacency lists. Parallel edges are not deduplicated.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, w uint16) EdgeIx {
	ix := EdgeIx(len(g.edges))
	na := g.AddNode(a)
	nb := g.AddNode(b)
	g.nodes[na].Edges = append(g.nodes[na].Edges, ix)
	g.nodes[nb].Edges = append(g.nodes[nb].Edges, ix)
	g.edges = append(g.edges, Edge{A: na, B: nb, W: w})

	return ix
}

// Edge returns the edge stored at ix.
func (g *Graph) Edge(ix EdgeIx) Edge { return g.edges[ix] }

// EdgeCount returns |E| including parallel edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of the edge table in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Incident returns the edges adjacent to ix in adjacency order.
func (g *Graph) Incident(ix NodeIx) []Edge {
	adj := g.nodes[ix].Edges
	out := make([]Edge, len(adj))
	for i, eix := range adj {
		out[i] = g.edges[eix]
	}
	return out
}
