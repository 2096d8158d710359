package kcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/mcode/builder"
	"github.com/katalvlaran/mcode/converters"
	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/kcore"
)

func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	return g
}

// TestTriangle covers the canonical three-node scenario.
func TestTriangle(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 900)
	g.AddEdge("B", "C", 900)
	g.AddEdge("A", "C", 900)

	r := kcore.Analyze(g)
	assert.Equal(t, 2, r.K)
	assert.Equal(t, 3, r.Core.NodeCount())
	assert.Equal(t, 3, r.Core.EdgeCount())
	assert.InDelta(t, 1.0, r.Core.Density(), 1e-12)
	assert.InDelta(t, 2.0, r.Weight(), 1e-12)
}

// TestTriangleWithTail drops a pendant path and keeps the triangle.
func TestTriangleWithTail(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("D", "E", 1)

	r := kcore.Analyze(g)
	assert.Equal(t, 2, r.K)
	assert.Equal(t, []string{"A", "B", "C"}, r.Core.SortedIDs())
	assert.Equal(t, []int{2, 2, 2, 1, 1}, kcore.Coreness(g))
}

// TestTopologies checks K for standard families.
func TestTopologies(t *testing.T) {
	cases := []struct {
		name   string
		con    builder.Constructor
		k      int
		weight float64
	}{
		{"K1", builder.Complete(1), 0, 0},
		{"K2", builder.Complete(2), 1, 1},
		{"K5", builder.Complete(5), 4, 4},
		{"C6", builder.Cycle(6), 2, 2 * 6.0 / 15.0},
		{"P3", builder.Path(3), 1, 2.0 / 3.0},
		{"P4", builder.Path(4), 1, 3.0 / 6.0},
		{"S5", builder.Star(5), 1, 4.0 / 10.0},
		{"edgeless", builder.RandomSparse(4, 0), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustBuild(t, tc.con)
			r := kcore.Analyze(g)
			assert.Equal(t, tc.k, r.K)
			assert.InDelta(t, tc.weight, r.Weight(), 1e-12)
			assert.LessOrEqual(t, r.K, g.MaxDegree())
		})
	}
}

// TestEdgelessKeepsAll retains every node at K=0.
func TestEdgelessKeepsAll(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("x")
	g.AddNode("y")

	r := kcore.Analyze(g)
	assert.Equal(t, 0, r.K)
	assert.Equal(t, 2, r.Core.NodeCount())
	assert.Zero(t, r.Weight())
}

// TestEmpty returns an empty core.
func TestEmpty(t *testing.T) {
	r := kcore.Analyze(core.NewGraph())
	assert.Equal(t, 0, r.K)
	assert.Equal(t, 0, r.Core.NodeCount())
	assert.Zero(t, r.Weight())
	assert.Zero(t, kcore.Result{}.Weight())
}

// TestParallelEdges counts every parallel edge in the peeling degree.
func TestParallelEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "B", 2)

	r := kcore.Analyze(g)
	assert.Equal(t, 2, r.K)
	assert.Equal(t, 1, r.Core.EdgeCount())
}

// TestCoreIsMinimumDegree checks every retained node has at least K core
// neighbours in a simple graph.
func TestCoreIsMinimumDegree(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(25, 0.25))
		require.NoError(t, err)

		r := kcore.Analyze(g)
		for i := 0; i < r.Core.NodeCount(); i++ {
			assert.GreaterOrEqual(t, r.Core.Degree(core.NodeIx(i)), r.K, "seed %d node %s", seed, r.Core.ID(core.NodeIx(i)))
		}
		assert.LessOrEqual(t, r.K, g.MaxDegree())
	}
}

// TestMonotone removes the found core and checks the remainder has a lower K.
func TestMonotone(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.3))
		require.NoError(t, err)

		r := kcore.Analyze(g)
		in := make(map[string]bool, r.Core.NodeCount())
		for _, id := range r.Core.IDs() {
			in[id] = true
		}
		rest := core.NewGraph()
		for _, id := range g.IDs() {
			if !in[id] {
				rest.AddNode(id)
			}
		}
		for _, e := range g.Edges() {
			a, b := g.ID(e.A), g.ID(e.B)
			if !in[a] && !in[b] {
				rest.AddEdge(a, b, e.W)
			}
		}
		if r.K > 0 {
			assert.Less(t, kcore.Analyze(rest).K, r.K, "seed %d", seed)
		}
	}
}

// TestCorenessMatchesGonum compares every k-core against gonum's topo.KCore.
func TestCorenessMatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.2))
		require.NoError(t, err)

		coreness := kcore.Coreness(g)
		gg := converters.ToGonum(g)
		for k := 1; k <= g.MaxDegree()+1; k++ {
			var want []core.NodeIx
			for i, c := range coreness {
				if c >= k {
					want = append(want, core.NodeIx(i))
				}
			}
			got := converters.Handles(topo.KCore(k, gg))
			assert.ElementsMatch(t, want, got, "seed %d k %d", seed, k)
		}
	}
}

// TestKCoreExtract builds the induced 2-core of two cliques and a bridge.
func TestKCoreExtract(t *testing.T) {
	g := mustBuild(t, builder.Cliques(4, 3), builder.Bridge("0:3", "1:0"), builder.Bridge("1:2", "tail"))

	two := kcore.KCore(g, 2)
	assert.Equal(t, 7, two.NodeCount())
	assert.Equal(t, 6+3+1, two.EdgeCount())

	three := kcore.KCore(g, 3)
	assert.Equal(t, []string{"0:0", "0:1", "0:2", "0:3"}, three.SortedIDs())
	assert.Equal(t, 8, kcore.KCore(g, 0).NodeCount())
}
