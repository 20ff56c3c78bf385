package pathcount_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/pathcount"
)

// ExampleCount counts the shortest routes 1→9 in the reference network.
//
//	1 ─2─ 2 ─2─ 3 ─2─ 5 ─2─ 7
//	      │           │     │1
//	      1           3──── 8
//	      │                 │1
//	      4 ─5─ 6 ────2──── 9
func ExampleCount() {
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"1", "2", 2}, {"2", "3", 2}, {"2", "4", 1}, {"3", "5", 2}, {"4", "6", 5},
		{"5", "7", 2}, {"5", "8", 3}, {"7", "8", 1}, {"6", "9", 2}, {"8", "9", 1},
	} {
		_, _ = g.AddEdge(e.u, e.v, e.w)
	}
	g.Freeze()

	res, err := pathcount.Count(g, "1", "9")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("paths=%s distance=%d\n", res.Paths, res.Distance)
	// Output: paths=3 distance=10
}

// ExampleCount_noPath shows that an unreachable target is an error, not zero.
func ExampleCount_noPath() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "D", 1)
	g.Freeze()

	_, err := pathcount.Count(g, "A", "D")
	fmt.Println(errors.Is(err, pathcount.ErrNoPathExists))
	// Output: true
}
