package builder

import "github.com/katalvlaran/mcode/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: edges (i, i+1) for i in [0, n-2].
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			g.AddEdge(ids[i], ids[i+1], cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
