// Package core provides the in-memory interaction graph used by the
// clustering pipeline: an undirected, weighted multigraph whose nodes are
// interned by string identifier and addressed by dense integer handles.
//
// The Graph G = (V,E) is append-only:
//
//   - Nodes are created on first reference (AddNode or AddEdge) and are never
//     removed. Each node keeps an ordered adjacency list of edge handles.
//   - Edges are undirected, carry a uint16 weight (interaction score) and are
//     appended to both endpoints' adjacency lists. Parallel edges are kept;
//     consumers that need a simple graph deduplicate (see bfs.Induced).
//   - Handles (NodeIx, EdgeIx) are dense indices into the node and edge
//     slices, so per-node auxiliary arrays can be indexed directly.
//
// Why handles instead of string keys?
//
//   - Peeling and traversal algorithms keep degree/visited arrays keyed by
//     node index; dense handles make those plain slices.
//   - Identifiers are interned once; the graph owns its strings.
//
// Core Methods:
//
//	// Build
//	NewGraph(opts ...GraphOption) *Graph
//	AddNode(id string) NodeIx                     // O(1) amortized, idempotent
//	AddEdge(a, b string, w uint16) EdgeIx         // O(1) amortized
//
//	// Query
//	Lookup(id string) (NodeIx, bool)              // O(1)
//	Node(ix NodeIx) *Node / Edge(ix EdgeIx) Edge   // O(1)
//	Neighbors(ix NodeIx) iter.Seq[NodeIx]         // lazy, O(deg)
//	DirectConnection(root, other NodeIx) (uint16, bool)
//	Degree / MaxDegree / NodeCount / EdgeCount
//	Density() float64                             // 2|E| / (|V|(|V|-1))
//
//	// Copy
//	Clone() *Graph                                // O(V+E)
//
// Handles are trusted: passing a handle that was not produced by this graph
// is a programming error and panics with an index-out-of-range fault.
//
// Concurrency: a Graph is built by a single goroutine; once built it may be
// read concurrently (see mcode.Score) as long as nobody mutates it.
package core
