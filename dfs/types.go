package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/mcode/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates a start handle the graph never issued.
	ErrStartOutOfRange = errors.New("dfs: start node out of range")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnRoot, if non-nil, is called when a tree root is pushed.
	OnRoot func(root core.NodeIx) error

	// OnDiscover, if non-nil, is called once per tree edge, before the
	// neighbour is pushed.
	OnDiscover func(from, to core.NodeIx) error

	// FilterNeighbor, if non-nil, decides whether an unvisited neighbour is
	// discovered through this edge. Skipped neighbours stay unvisited.
	FilterNeighbor func(from, to core.NodeIx) bool

	// FullTraversal resumes from unvisited nodes until the graph is covered.
	FullTraversal bool
}

// DefaultOptions returns Background context, no hooks, single-tree mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnRoot installs the tree-root hook.
func WithOnRoot(fn func(root core.NodeIx) error) Option {
	return func(o *Options) { o.OnRoot = fn }
}

// WithOnDiscover installs the tree-edge hook.
func WithOnDiscover(fn func(from, to core.NodeIx) error) Option {
	return func(o *Options) { o.OnDiscover = fn }
}

// WithFilterNeighbor installs a neighbour filter.
func WithFilterNeighbor(fn func(from, to core.NodeIx) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest mode.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a traversal.
type Result struct {
	// Order lists nodes in pop order.
	Order []core.NodeIx

	// Parent maps each non-root node to the node it was discovered from.
	Parent map[core.NodeIx]core.NodeIx

	// Roots lists the start node followed by every resumption root.
	Roots []core.NodeIx

	// Visited is indexed by handle.
	Visited []bool

	// SkippedNeighbors counts FilterNeighbor rejections.
	SkippedNeighbors int
}
