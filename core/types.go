// File: types.go
// Role: Node, Edge, Graph, handles and GraphOption.
// Determinism:
//   - Handles are assigned in insertion order starting at 0.
//   - Adjacency lists preserve edge insertion order.

package core

import "errors"

// ErrUnknownNode is returned by lookups of identifiers that were never added.
var ErrUnknownNode = errors.New("core: unknown node")

// NodeIx is a dense handle to a node of one Graph.
type NodeIx uint32

// EdgeIx is a dense handle to an edge of one Graph.
type EdgeIx uint32

// Node is a vertex of the interaction graph.
type Node struct {
	// ID is the protein identifier; unique within the Graph.
	ID string

	// Edges lists incident edge handles in insertion order. A self-loop
	// appears twice.
	Edges []EdgeIx
}

// Edge is an undirected, weighted connection. No canonical ordering of A and
// B is guaranteed.
type Edge struct {
	A NodeIx
	B NodeIx
	W uint16
}

// Other returns the endpoint of e opposite to ix. For a self-loop it returns ix.
func (e Edge) Other(ix NodeIx) NodeIx {
	if e.A == ix {
		return e.B
	}
	return e.A
}

// Has reports whether ix is one of e's endpoints.
func (e Edge) Has(ix NodeIx) bool { return e.A == ix || e.B == ix }

// Graph owns the identifier index, the node table and the edge table.
//
// Invariant: every handle in nodes[i].Edges indexes a valid edge whose A or B
// equals i.
type Graph struct {
	index map[string]NodeIx // identifier → handle
	nodes []Node            // handle → node
	edges []Edge            // handle → edge
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for roughly n nodes and n edges.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.index = make(map[string]NodeIx, n)
		g.nodes = make([]Node, 0, n)
		g.edges = make([]Edge, 0, n)
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus any preallocation requested by options).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.index == nil {
		g.index = make(map[string]NodeIx)
	}

	return g
}
