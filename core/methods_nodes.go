// File: methods_nodes.go
// Role: Node registration and node-level queries.

package core

import (
	"iter"
	"sort"
)

// AddNode registers id and returns its handle. If id is already present the
// existing handle is returned and nothing changes.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) NodeIx {
	if ix, ok := g.index[id]; ok {
		return ix
	}
	ix := NodeIx(len(g.nodes))
	g.index[id] = ix
	g.nodes = append(g.nodes, Node{ID: id})

	return ix
}

// Lookup returns the handle of id, if registered.
func (g *Graph) Lookup(id string) (NodeIx, bool) {
	ix, ok := g.index[id]
	return ix, ok
}

// Resolve returns the handle of id or ErrUnknownNode.
func (g *Graph) Resolve(id string) (NodeIx, error) {
	ix, ok := g.index[id]
	if !ok {
		return 0, ErrUnknownNode
	}
	return ix, nil
}

// Node returns the node stored at ix. The pointer stays valid until the next
// AddNode/AddEdge call.
func (g *Graph) Node(ix NodeIx) *Node { return &g.nodes[ix] }

// ID returns the identifier of ix.
func (g *Graph) ID(ix NodeIx) string { return g.nodes[ix].ID }

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// IDs returns all identifiers in handle order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].ID
	}
	return out
}

// SortedIDs returns all identifiers in lexicographic order.
func (g *Graph) SortedIDs() []string {
	out := g.IDs()
	sort.Strings(out)
	return out
}

// Degree returns the adjacency length of ix (parallel edges counted, a
// self-loop counts twice).
func (g *Graph) Degree(ix NodeIx) int { return len(g.nodes[ix].Edges) }

// MaxDegree returns the largest Degree over all nodes, 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	best := 0
	for i := range g.nodes {
		if d := len(g.nodes[i].Edges); d > best {
			best = d
		}
	}
	return best
}

// Neighbors yields, for each adjacency edge of ix, the opposite endpoint.
// The sequence is lazy and may be ranged over repeatedly; it is only defined
// while ix's adjacency list is not being appended to.
// Complexity: O(deg(ix)) per full iteration.
func (g *Graph) Neighbors(ix NodeIx) iter.Seq[NodeIx] {
	return func(yield func(NodeIx) bool) {
		for _, eix := range g.nodes[ix].Edges {
			if !yield(g.edges[eix].Other(ix)) {
				return
			}
		}
	}
}

// DirectConnection returns the weight of the first edge in root's adjacency
// joining root and other.
// Complexity: O(deg(root)).
func (g *Graph) DirectConnection(root, other NodeIx) (uint16, bool) {
	for _, eix := range g.nodes[root].Edges {
		e := g.edges[eix]
		if e.Other(root) == other {
			return e.W, true
		}
	}
	return 0, false
}

// Density returns 2|E| / (|V|(|V|-1)), defined as 0 when |V| ≤ 1.
func (g *Graph) Density() float64 {
	n := len(g.nodes)
	if n <= 1 {
		return 0
	}
	return 2 * float64(len(g.edges)) / (float64(n) * float64(n-1))
}
