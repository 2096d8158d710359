package builder

import (
	"fmt"

	"github.com/katalvlaran/mcode/core"
)

const (
	methodCliques  = "Cliques"
	minCliqueNodes = 1
)

// Cliques builds one disjoint complete graph per size. Vertices of clique c
// are named "<c>:<idFn(i)>" so identifiers never collide across cliques.
func Cliques(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for c, n := range sizes {
			if n < minCliqueNodes {
				return builderErrorf(methodCliques, ErrTooFewVertices, "clique %d: n=%d < min=%d", c, n, minCliqueNodes)
			}
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("%d:%s", c, cfg.idFn(i))
				g.AddNode(ids[i])
			}
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					g.AddEdge(ids[i], ids[j], cfg.weightFn(cfg.rng))
				}
			}
		}
		return nil
	}
}

// Bridge adds a single edge between two existing or new identifiers.
func Bridge(a, b string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		g.AddEdge(a, b, cfg.weightFn(cfg.rng))
		return nil
	}
}
