// Package dfs implements an explicit-stack depth-first walk over core.Graph
// with discovery-time marking, a tree-edge hook and forest resumption.
//
// A node is marked visited the moment it is discovered (pushed), never again
// at pop time, so each node enters the stack exactly once. For every popped
// node the walker scans its adjacency in order; each unvisited neighbour is
// reported to OnDiscover(current, neighbour), marked and pushed.
//
// With WithFullTraversal, when the stack empties the walker resumes from the
// lowest-handle unvisited node, scanning forward from the last resumption
// point, until every node has been visited exactly once.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked once per pop.
//   - WithOnRoot(fn)            called for the start node and every resumption root.
//   - WithOnDiscover(fn)        tree-edge hook; an error aborts the walk.
//   - WithFilterNeighbor(fn)    return false to leave a neighbour undiscovered.
//   - WithFullTraversal()       forest mode.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartOutOfRange        if start is not a handle of g.
//   - context.Canceled          if ctx is done.
//   - any error returned by a hook.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs
