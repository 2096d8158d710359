package kcore

import "github.com/katalvlaran/mcode/core"

// Result is the highest non-empty core of a graph.
type Result struct {
	// K is the core order; every node of Core has degree ≥ K within Core
	// (counting the multigraph degree used while peeling).
	K int

	// Core is the induced subgraph over the retained nodes.
	Core *core.Graph
}

// Weight returns K multiplied by the density of Core.
func (r Result) Weight() float64 {
	if r.Core == nil {
		return 0
	}
	return float64(r.K) * r.Core.Density()
}
