// Package mcode clusters a protein interaction graph into complexes by
// weight-gated seed growth.
//
// The pipeline has two stages:
//
//	Score(ctx, g)          per-node weight = kcore.Analyze(scope(node)).Weight()
//	Assign(g, w, density)  seed + depth-first walk + gated union → membership
//
// Scoring runs in parallel over a read-only graph. ScopeNeighborhood (the
// default) scores the induced subgraph of each node and its direct
// neighbours. With ScopeComponent every node of a connected component shares
// the component's score, so each component is analyzed once and Assign
// degenerates to connected components for any density.
//
// Assignment is sequential. It picks the heaviest node as seed (ties go to the
// smallest identifier), allocates one disjoint-set singleton per node and
// walks the graph depth-first from the seed, resuming at unvisited nodes
// until every node is covered. For each tree edge (cur → nb) the neighbour's
// component is folded into cur's when
//
//	w[nb] > w[cur] · (1 − density)
//
// The complex id of a node is the handle of its component representative.
//
// Network is the union-everything baseline: joining every interaction yields
// plain connected-component membership.
package mcode
