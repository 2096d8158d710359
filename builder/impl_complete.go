package builder

import "github.com/katalvlaran/mcode/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n: every unordered pair {i,j}, i<j, exactly once, in
// lexicographic (i,j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(ids[i], ids[j], cfg.weightFn(cfg.rng))
			}
		}
		return nil
	}
}
