package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcode/builder"
	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/dfs"
)

// diamond: A-B, A-C, B-D, C-D, plus isolated E and a separate F-G edge.
func diamond() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 1)
	g.AddNode("E")
	g.AddEdge("F", "G", 1)
	return g
}

func TestSingleTree(t *testing.T) {
	g := diamond()
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)

	// A pushes B then C; C is popped first and discovers D.
	assert.Equal(t, []core.NodeIx{0, 2, 3, 1}, res.Order)
	assert.Equal(t, []core.NodeIx{0}, res.Roots)
	assert.Equal(t, map[core.NodeIx]core.NodeIx{1: 0, 2: 0, 3: 2}, res.Parent)
	assert.False(t, res.Visited[4])
}

func TestFullTraversalVisitsOnce(t *testing.T) {
	g := diamond()
	var roots []core.NodeIx
	res, err := dfs.DFS(g, 3,
		dfs.WithFullTraversal(),
		dfs.WithOnRoot(func(r core.NodeIx) error { roots = append(roots, r); return nil }),
	)
	require.NoError(t, err)

	assert.Len(t, res.Order, g.NodeCount())
	assert.ElementsMatch(t, []core.NodeIx{0, 1, 2, 3, 4, 5, 6}, res.Order)
	assert.Equal(t, []core.NodeIx{3, 4, 5}, roots)
	assert.Equal(t, roots, res.Roots)
}

func TestDiscoverHookSeesTreeEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(6))
	require.NoError(t, err)

	edges := 0
	res, err := dfs.DFS(g, 0, dfs.WithOnDiscover(func(from, to core.NodeIx) error {
		assert.NotEqual(t, from, to)
		edges++
		return nil
	}))
	require.NoError(t, err)
	// a spanning tree over n nodes has n-1 edges
	assert.Equal(t, 5, edges)
	assert.Len(t, res.Parent, 5)
}

func TestFilterNeighbor(t *testing.T) {
	g := diamond()
	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(_, to core.NodeIx) bool { return to != 3 }))
	require.NoError(t, err)
	assert.False(t, res.Visited[3])
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestErrors(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(diamond(), 99)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)

	boom := errors.New("boom")
	_, err = dfs.DFS(diamond(), 0, dfs.WithOnDiscover(func(_, _ core.NodeIx) error { return boom }))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dfs.DFS(diamond(), 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}
