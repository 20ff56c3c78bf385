package core_test

import (
	"fmt"

	"github.com/katalvlaran/pathcount/core"
)

// ExampleGraph_Neighbors shows that every undirected edge is visible from
// both endpoints and that parallel edges stay distinct.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2", 2)
	_, _ = g.AddEdge("2", "3", 2)
	_, _ = g.AddEdge("2", "3", 2)
	g.Freeze()

	arcs, _ := g.Neighbors("2")
	for _, a := range arcs {
		fmt.Printf("2→%s w=%d (%s)\n", a.To, a.Weight, a.EdgeID)
	}
	// Output:
	// 2→1 w=2 (e1)
	// 2→3 w=2 (e2)
	// 2→3 w=2 (e3)
}
