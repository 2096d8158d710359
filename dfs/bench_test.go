package dfs_test

import (
	"testing"

	"github.com/katalvlaran/mcode/builder"
	"github.com/katalvlaran/mcode/dfs"
)

// BenchmarkDFSPath measures a forest walk over a long path.
func BenchmarkDFSPath(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Path(10000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0, dfs.WithFullTraversal())
	}
}
