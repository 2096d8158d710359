package builder

import "github.com/katalvlaran/mcode/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a hub (index 0) joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
		}
		ids := addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			g.AddEdge(ids[0], ids[i], cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
