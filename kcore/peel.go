package kcore

import "github.com/katalvlaran/mcode/core"

// peeler holds live degrees and liveness for one graph.
type peeler struct {
	g     *core.Graph
	deg   []int
	alive []bool
	live  int
	queue []core.NodeIx
}

func newPeeler(g *core.Graph) *peeler {
	n := g.NodeCount()
	p := &peeler{
		g:     g,
		deg:   make([]int, n),
		alive: make([]bool, n),
		live:  n,
		queue: make([]core.NodeIx, 0, n),
	}
	for i := 0; i < n; i++ {
		p.deg[i] = g.Degree(core.NodeIx(i))
		p.alive[i] = true
	}
	return p
}

// peel removes every live node whose degree drops below k, cascading, and
// calls onRemove for each removal.
func (p *peeler) peel(k int, onRemove func(core.NodeIx)) {
	p.queue = p.queue[:0]
	for i, ok := range p.alive {
		if ok && p.deg[i] < k {
			p.queue = append(p.queue, core.NodeIx(i))
		}
	}

	for len(p.queue) > 0 {
		v := p.queue[len(p.queue)-1]
		p.queue = p.queue[:len(p.queue)-1]
		if !p.alive[v] {
			continue
		}
		p.alive[v] = false
		p.live--
		onRemove(v)

		for _, eix := range p.g.Node(v).Edges {
			u := p.g.Edge(eix).Other(v)
			if u == v || !p.alive[u] {
				continue
			}
			p.deg[u]--
			// queue exactly when crossing the threshold
			if p.deg[u] == k-1 {
				p.queue = append(p.queue, u)
			}
		}
	}
}

// snapshot returns the current live set.
func (p *peeler) snapshot() []bool {
	out := make([]bool, len(p.alive))
	copy(out, p.alive)
	return out
}
