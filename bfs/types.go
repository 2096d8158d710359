package bfs

import (
	"math"
	"sort"

	"github.com/katalvlaran/mcode/core"
)

// Unbounded is the depth that lets BFS exhaust the start node's component.
const Unbounded = math.MaxInt

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds hooks invoked during traversal.
type Options struct {
	// OnEnqueue is called when a node is discovered, with its hop distance.
	OnEnqueue func(ix core.NodeIx, hop int)

	// OnExpand is called right before a node's adjacency is scanned.
	OnExpand func(ix core.NodeIx, hop int)
}

// DefaultOptions returns no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(core.NodeIx, int) {},
		OnExpand:  func(core.NodeIx, int) {},
	}
}

// WithOnEnqueue registers a discovery hook.
func WithOnEnqueue(fn func(ix core.NodeIx, hop int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers an expansion hook.
func WithOnExpand(fn func(ix core.NodeIx, hop int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Set is a set of node handles.
type Set map[core.NodeIx]struct{}

// Has reports membership.
func (s Set) Has(ix core.NodeIx) bool {
	_, ok := s[ix]
	return ok
}

// Sorted returns the members in ascending handle order.
func (s Set) Sorted() []core.NodeIx {
	out := make([]core.NodeIx, 0, len(s))
	for ix := range s {
		out = append(out, ix)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Result holds the outcome of a traversal.
//   - Order: nodes in discovery sequence, start first.
//   - Hop:   hop distance from the start for every discovered node.
type Result struct {
	Order []core.NodeIx
	Hop   map[core.NodeIx]int
}

// Set returns the visited nodes as a Set.
func (r *Result) Set() Set {
	s := make(Set, len(r.Order))
	for _, ix := range r.Order {
		s[ix] = struct{}{}
	}
	return s
}

// Has reports whether ix was visited.
func (r *Result) Has(ix core.NodeIx) bool {
	_, ok := r.Hop[ix]
	return ok
}
