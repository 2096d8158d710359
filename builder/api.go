package builder

import (
	"fmt"

	"github.com/katalvlaran/mcode/core"
)

// Constructor applies a deterministic topology to g using cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves bopts and applies every
// constructor in order. The first constructor error is returned wrapped with
// "BuildGraph: %w"; the partially built graph is discarded.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for _, c := range cons {
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// addVertices registers n vertices named by cfg.idFn and returns their IDs.
func addVertices(g *core.Graph, cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddNode(ids[i])
	}
	return ids
}
