package dfs

import (
	"fmt"

	"github.com/katalvlaran/mcode/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph  *core.Graph
	opts   Options
	res    *Result
	stack  []core.NodeIx
	cursor int // lowest handle that may still be unvisited
}

// DFS walks g depth-first from start. In forest mode it keeps resuming from
// unvisited nodes until every node has been popped once. The partial result
// is returned alongside any abort error.
func DFS(g *core.Graph, start core.NodeIx, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.NodeCount()
	if int(start) >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]core.NodeIx, 0, n),
			Parent:  make(map[core.NodeIx]core.NodeIx, n),
			Visited: make([]bool, n),
		},
		stack: make([]core.NodeIx, 0, n),
	}

	root, ok := start, true
	for ok {
		if err := w.pushRoot(root); err != nil {
			return w.res, err
		}
		if err := w.drain(); err != nil {
			return w.res, err
		}
		if !o.FullTraversal {
			break
		}
		root, ok = w.nextUnvisited()
	}

	return w.res, nil
}

func (w *walker) pushRoot(root core.NodeIx) error {
	w.res.Roots = append(w.res.Roots, root)
	w.res.Visited[root] = true
	w.stack = append(w.stack, root)
	if w.opts.OnRoot != nil {
		return w.opts.OnRoot(root)
	}
	return nil
}

// drain pops until the stack is empty.
func (w *walker) drain() error {
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.res.Order = append(w.res.Order, cur)

		for nb := range w.graph.Neighbors(cur) {
			if w.res.Visited[nb] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(cur, nb) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.opts.OnDiscover != nil {
				if err := w.opts.OnDiscover(cur, nb); err != nil {
					return fmt.Errorf("dfs: discover %d→%d: %w", cur, nb, err)
				}
			}
			w.res.Visited[nb] = true
			w.res.Parent[nb] = cur
			w.stack = append(w.stack, nb)
		}
	}
	return nil
}

// nextUnvisited scans forward from the last resumption point.
func (w *walker) nextUnvisited() (core.NodeIx, bool) {
	for w.cursor < len(w.res.Visited) && w.res.Visited[w.cursor] {
		w.cursor++
	}
	if w.cursor == len(w.res.Visited) {
		return 0, false
	}
	return core.NodeIx(w.cursor), true
}
