package mcode

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mcode/bfs"
	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/kcore"
)

// job is one subgraph to analyze and the nodes that inherit its weight.
type job struct {
	root    core.NodeIx
	members []core.NodeIx
}

// Score computes the weight of every node of g. The graph must not be
// mutated while Score runs.
func Score(ctx context.Context, g *core.Graph, opts ...Option) (Weights, error) {
	o := resolve(opts)
	start := time.Now()

	jobs := plan(g, o.Scope)
	scores := make([]float64, g.NodeCount())

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			w := kcore.Analyze(subgraph(g, j, o.Scope)).Weight()
			// members are disjoint across jobs
			for _, ix := range j.members {
				scores[ix] = w
			}
			if o.OnScored != nil {
				o.OnScored(len(j.members))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("mcode: score: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("mcode: score: %w", err)
	}

	out := make(Weights, len(scores))
	for i, w := range scores {
		out[g.ID(core.NodeIx(i))] = w
	}

	o.Logger.Debug("scored nodes",
		zap.Int("nodes", len(scores)),
		zap.Int("subgraphs", len(jobs)),
		zap.Stringer("scope", o.Scope),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// plan groups nodes by component, or emits one job per node.
func plan(g *core.Graph, scope Scope) []job {
	n := g.NodeCount()
	if scope == ScopeNeighborhood {
		jobs := make([]job, n)
		for i := range jobs {
			ix := core.NodeIx(i)
			jobs[i] = job{root: ix, members: []core.NodeIx{ix}}
		}
		return jobs
	}

	var jobs []job
	covered := make([]bool, n)
	for i := 0; i < n; i++ {
		if covered[i] {
			continue
		}
		members := bfs.Reachable(g, core.NodeIx(i), bfs.Unbounded).Sorted()
		for _, ix := range members {
			covered[ix] = true
		}
		jobs = append(jobs, job{root: core.NodeIx(i), members: members})
	}
	return jobs
}

func subgraph(g *core.Graph, j job, scope Scope) *core.Graph {
	if scope == ScopeNeighborhood {
		return bfs.Neighborhood(g, j.root)
	}
	set := make(bfs.Set, len(j.members))
	for _, ix := range j.members {
		set[ix] = struct{}{}
	}
	return bfs.Induced(g, set)
}
