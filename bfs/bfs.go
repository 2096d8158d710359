package bfs

import "github.com/katalvlaran/mcode/core"

// queueItem pairs a node with its hop distance from the start.
type queueItem struct {
	ix  core.NodeIx
	hop int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	depth int
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search from start, expanding nodes whose hop is at
// most depth (negative depth behaves as 0). The start node and its direct
// neighbours are always part of the result.
// Complexity: O(V + E) over the explored region.
func BFS(g *core.Graph, start core.NodeIx, depth int, opts ...Option) *Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if depth < 0 {
		depth = 0
	}

	w := &walker{
		graph: g,
		opts:  o,
		depth: depth,
		res: &Result{
			Order: make([]core.NodeIx, 0, g.Degree(start)+1),
			Hop:   make(map[core.NodeIx]int, g.Degree(start)+1),
		},
	}

	w.discover(start, 0)
	w.loop()

	return w.res
}

// Reachable is BFS reduced to its visited set.
func Reachable(g *core.Graph, start core.NodeIx, depth int) Set {
	return BFS(g, start, depth).Set()
}

// discover marks ix visited at hop and queues it for expansion when allowed.
func (w *walker) discover(ix core.NodeIx, hop int) {
	w.res.Hop[ix] = hop
	w.res.Order = append(w.res.Order, ix)
	w.opts.OnEnqueue(ix, hop)
	if hop <= w.depth {
		w.queue = append(w.queue, queueItem{ix: ix, hop: hop})
	}
}

// loop drains the queue.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnExpand(item.ix, item.hop)

		for nb := range w.graph.Neighbors(item.ix) {
			// first time seen?
			if _, seen := w.res.Hop[nb]; !seen {
				w.discover(nb, item.hop+1)
			}
		}
	}
}

// Connected reports whether b is reachable from a, or a from b, within depth
// hops. A depth below 1 is treated as 1 (direct neighbours).
func Connected(g *core.Graph, a, b core.NodeIx, depth int) bool {
	rounds := depth - 1
	if rounds < 0 {
		rounds = 0
	}
	if BFS(g, a, rounds).Has(b) {
		return true
	}
	return BFS(g, b, rounds).Has(a)
}
