// Package converters bridges core.Graph to other graph representations.
//
// Today that is gonum (gonum.org/v1/gonum/graph): ToGonum and
// ToWeightedGonum copy a core.Graph into a simple undirected gonum graph whose
// node IDs are the core handles, so results computed with gonum's topo,
// traverse or path packages can be mapped straight back with
// core.Graph.ID(core.NodeIx(n.ID())).
//
// gonum simple graphs cannot hold self-loops or parallel edges; both are
// collapsed (loops dropped, the first parallel edge kept).
package converters
