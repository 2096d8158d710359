package builder

import "github.com/katalvlaran/mcode/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds C_n: edges (i, i+1 mod n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			g.AddEdge(ids[i], ids[(i+1)%n], cfg.weightFn(cfg.rng))
		}
		return nil
	}
}
