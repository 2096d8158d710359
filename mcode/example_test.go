package mcode_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/mcode"
)

// ExampleAssign scores a small network and groups it into complexes.
func ExampleAssign() {
	g := core.NewGraph()
	g.AddEdge("MCM2", "MCM3", 999)
	g.AddEdge("MCM3", "MCM5", 999)
	g.AddEdge("MCM5", "MCM2", 999)
	g.AddEdge("ORC1", "ORC2", 950)

	w, _ := mcode.Score(context.Background(), g)
	res, _ := mcode.Assign(g, w, 0.5)

	fmt.Println(res.Seed, res.Count())
	for _, id := range []string{"MCM2", "ORC1"} {
		fmt.Println(res.Complexes()[res.Membership[id]])
	}
	// Output:
	// MCM2 2
	// [MCM2 MCM3 MCM5]
	// [ORC1 ORC2]
}
