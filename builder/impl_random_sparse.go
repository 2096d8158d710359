package builder

import "github.com/katalvlaran/mcode/core"

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
)

// RandomSparse builds an Erdős–Rényi G(n,p) graph: each unordered pair is
// included independently with probability p, drawn from cfg.rng in (i,j)
// lexicographic order so a fixed seed reproduces the same graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return builderErrorf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minRandomSparseNodes)
		}
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability, "p=%.3f", p)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					g.AddEdge(ids[i], ids[j], cfg.weightFn(cfg.rng))
				}
			}
		}
		return nil
	}
}
