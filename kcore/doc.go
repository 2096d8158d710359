// Package kcore finds the densest k-core of a core.Graph by degree peeling
// and turns it into the scalar weight used to rank seeds.
//
// A k-core is the maximal subgraph in which every node has degree at least k.
// Analyze raises the threshold k from 1 and, at each level, removes nodes of
// live degree below k until no more fall out (removals cascade through
// neighbour degrees). The last non-empty level is the highest core:
//
//	Analyze(g) → Result{K, Core}
//	Result.Weight() = K · Core.Density()
//
// Degrees are adjacency lengths, so parallel edges count once per edge and a
// self-loop contributes two to its own node without ever being decremented.
// The returned Core is the induced subgraph (parallel edges collapsed).
//
// Peeling starts at k=1 and cascades inside every level, so a tree still has
// a non-empty 1-core. A path A-B-C weighs 1 · 2/3 rather than the 0 a single
// removal pass starting at k=2 would give. Every returned Core is a true
// k-core.
//
// Coreness exposes the per-node core numbers produced by the same peeling,
// and KCore extracts the induced k-core for any k.
//
// Edge cases:
//   - empty graph: K=0 and an empty Core.
//   - edgeless graph: K=0 and every node retained.
//
// Complexity: O(K·V + E) time, O(V) extra space.
package kcore
