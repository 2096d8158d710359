package kcore

import (
	"github.com/katalvlaran/mcode/bfs"
	"github.com/katalvlaran/mcode/core"
)

// Analyze returns the highest non-empty k-core of g.
func Analyze(g *core.Graph) Result {
	if g.NodeCount() == 0 {
		return Result{K: 0, Core: core.NewGraph()}
	}

	p := newPeeler(g)
	for k := 1; ; k++ {
		before := p.snapshot()
		p.peel(k, func(core.NodeIx) {})
		if p.live == 0 {
			return Result{K: k - 1, Core: bfs.Induced(g, toSet(before))}
		}
	}
}

// Coreness returns the core number of every node, indexed by handle.
func Coreness(g *core.Graph) []int {
	out := make([]int, g.NodeCount())
	p := newPeeler(g)
	for k := 1; p.live > 0; k++ {
		p.peel(k, func(v core.NodeIx) { out[v] = k - 1 })
	}
	return out
}

// KCore returns the subgraph induced by nodes whose core number is at least
// k. A non-positive k yields a copy of every node with deduplicated edges.
func KCore(g *core.Graph, k int) *core.Graph {
	set := make(bfs.Set)
	for i, c := range Coreness(g) {
		if c >= k {
			set[core.NodeIx(i)] = struct{}{}
		}
	}
	return bfs.Induced(g, set)
}

func toSet(mask []bool) bfs.Set {
	set := make(bfs.Set)
	for i, ok := range mask {
		if ok {
			set[core.NodeIx(i)] = struct{}{}
		}
	}
	return set
}
