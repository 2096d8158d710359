// File: methods_clone.go
// Role: Deep copy.

package core

// Clone returns a deep copy sharing no slices or maps with g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		index: make(map[string]NodeIx, len(g.index)),
		nodes: make([]Node, len(g.nodes)),
		edges: make([]Edge, len(g.edges)),
	}
	for id, ix := range g.index {
		c.index[id] = ix
	}
	for i, n := range g.nodes {
		c.nodes[i] = Node{ID: n.ID, Edges: append([]EdgeIx(nil), n.Edges...)}
	}
	copy(c.edges, g.edges)

	return c
}
