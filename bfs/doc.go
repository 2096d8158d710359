// Package bfs provides breadth-first reachability over a core.Graph and the
// induced-subgraph extraction built on it.
//
// What
//
//   - BFS(g, start, depth) explores from start with a FIFO queue. A node is
//     marked visited when it is first discovered (not when dequeued), so no
//     node is ever enqueued twice, even with parallel edges or self-loops.
//   - Depth counts expansion rounds beyond the start: the start node and its
//     direct neighbours are always included, and a node discovered at hop h
//     is itself expanded only when h ≤ depth. Every returned node is therefore
//     within depth+1 hops of start. Unbounded visits the whole component.
//   - Connected(g, a, b, depth) checks reachability within depth hops from
//     either end.
//   - Induced(g, set) builds the induced subgraph over a node set keeping one
//     edge per unordered pair. Subgraph(g, node) applies it to node's whole
//     connected component; Neighborhood(g, node) to node plus its direct
//     neighbours.
//
// Why
//
//   - Per-node scoring (kcore, mcode) works on small induced subgraphs that
//     must be simple graphs even when the interaction list repeats pairs.
//
// Determinism
//
//	Neighbours are expanded in adjacency (insertion) order and induced
//	subgraphs are built in ascending handle order, so Order, handle
//	assignment in subgraphs and edge order are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges| of the explored component)
//
//   - BFS:      O(V + E) time, O(V) memory
//   - Induced:  O(V + E) time, O(V + E) memory
//
// Options
//
//   - WithOnEnqueue(fn): called once per node at discovery with its hop.
//   - WithOnExpand(fn):  called when a node's edges are about to be scanned.
package bfs
