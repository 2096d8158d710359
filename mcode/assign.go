package mcode

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/dfs"
	"github.com/katalvlaran/mcode/disjoint"
)

// Assign groups the nodes of g into complexes using weights w and the
// density threshold. Every node of g must have a weight; identifiers in w
// that are not in g are ignored.
func Assign(g *core.Graph, w Weights, density float64, opts ...Option) (*Result, error) {
	o := resolve(opts)
	if !(density > 0 && density < 1) {
		return nil, fmt.Errorf("%w: %v", ErrDensityRange, density)
	}

	n := g.NodeCount()
	if n == 0 {
		return &Result{Membership: map[string]int{}}, nil
	}
	if len(w) == 0 {
		return nil, ErrEmptyWeights
	}

	ws := make([]float64, n)
	local := make(Weights, n)
	for i := range ws {
		id := g.ID(core.NodeIx(i))
		v, ok := w[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingWeight, id)
		}
		ws[i], local[id] = v, v
	}

	seedID, err := PickSeed(local)
	if err != nil {
		return nil, err
	}
	seed, _ := g.Lookup(seedID)

	// element i holds node i
	set := disjoint.WithCapacity[core.NodeIx](n)
	for i := 0; i < n; i++ {
		set.Singleton(core.NodeIx(i))
	}

	keep := 1 - density
	merges := 0
	walk, err := dfs.DFS(g, seed,
		dfs.WithFullTraversal(),
		dfs.WithOnDiscover(func(cur, nb core.NodeIx) error {
			if ws[nb] > ws[cur]*keep {
				set.Union(disjoint.KeepLeft[core.NodeIx], disjoint.Element(cur), disjoint.Element(nb))
				merges++
			}
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("mcode: assign: %w", err)
	}

	res := &Result{
		Membership: make(map[string]int, n),
		Components: set.Len(),
		Seed:       seedID,
		Merges:     merges,
	}
	for i := 0; i < n; i++ {
		res.Membership[g.ID(core.NodeIx(i))] = int(set.FindRepr(disjoint.Element(i)))
	}

	o.Logger.Debug("assigned complexes",
		zap.String("seed", seedID),
		zap.Int("nodes", n),
		zap.Int("complexes", res.Components),
		zap.Int("merges", merges),
		zap.Int("roots", len(walk.Roots)),
		zap.Float64("density", density),
	)
	return res, nil
}
