package mcode

import (
	"errors"
	"maps"
	"slices"

	"go.uber.org/zap"
)

var (
	// ErrEmptyWeights is returned when a seed is requested from no weights.
	ErrEmptyWeights = errors.New("mcode: empty weight map")

	// ErrDensityRange indicates a density outside the open interval (0,1).
	ErrDensityRange = errors.New("mcode: density out of range (0,1)")

	// ErrMissingWeight indicates a graph node without a weight.
	ErrMissingWeight = errors.New("mcode: node has no weight")
)

// Weights maps a protein identifier to its local density score.
type Weights map[string]float64

// Scope selects the subgraph a node is scored on.
type Scope int

const (
	// ScopeNeighborhood scores the node and its direct neighbours.
	ScopeNeighborhood Scope = iota
	// ScopeComponent scores the node's whole connected component. Every
	// node of a component then carries the same weight.
	ScopeComponent
)

func (s Scope) String() string {
	switch s {
	case ScopeComponent:
		return "component"
	case ScopeNeighborhood:
		return "neighborhood"
	default:
		return "unknown"
	}
}

// ParseScope maps "neighborhood" (or "") and "component" to a Scope.
func ParseScope(s string) (Scope, bool) {
	switch s {
	case "neighborhood", "":
		return ScopeNeighborhood, true
	case "component":
		return ScopeComponent, true
	}
	return ScopeNeighborhood, false
}

// Option configures Score and Assign.
type Option func(*Options)

// Options holds tunables shared by Score and Assign.
type Options struct {
	Scope   Scope
	Workers int
	Logger  *zap.Logger

	// OnScored, if non-nil, is called once per scored subgraph with the
	// number of nodes that received its weight. It may run concurrently.
	OnScored func(nodes int)
}

// DefaultOptions returns neighbourhood scope, four workers and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Scope:   ScopeNeighborhood,
		Workers: 4,
		Logger:  zap.NewNop(),
	}
}

// WithScope sets the scoring scope.
func WithScope(s Scope) Option {
	return func(o *Options) { o.Scope = s }
}

// WithWorkers bounds scoring parallelism; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnScored installs a progress hook.
func WithOnScored(fn func(nodes int)) Option {
	return func(o *Options) { o.OnScored = fn }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of Assign.
type Result struct {
	// Membership maps every node identifier to its complex id.
	Membership map[string]int

	// Components is the number of disjoint-set components after assignment.
	Components int

	// Seed is the identifier the walk started from.
	Seed string

	// Merges counts tree edges that passed the weight gate.
	Merges int
}

// Complexes groups identifiers by complex id, each group sorted.
func (r *Result) Complexes() map[int][]string {
	out := make(map[int][]string)
	for _, id := range slices.Sorted(maps.Keys(r.Membership)) {
		c := r.Membership[id]
		out[c] = append(out[c], id)
	}
	return out
}

// Count returns the number of distinct complex ids.
func (r *Result) Count() int {
	seen := make(map[int]struct{})
	for _, c := range r.Membership {
		seen[c] = struct{}{}
	}
	return len(seen)
}
