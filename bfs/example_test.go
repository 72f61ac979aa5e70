package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/travelgraph/bfs"
	"github.com/katalvlaran/travelgraph/core"
)

// ExampleBFS shows fewest-hop routing where weights are ignored.
func ExampleBFS() {
	g := core.NewGraph(core.WithOrder[string](strings.Compare))
	_ = g.AddEdge("A", "B", 100)
	_ = g.AddEdge("B", "C", 200)
	_ = g.AddEdge("A", "D", 300)
	_ = g.AddEdge("D", "E", 400)
	_ = g.AddEdge("C", "E", 150)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("E")
	fmt.Println("order:", res.Order)
	fmt.Println("path to E:", path, "hops:", res.Depth["E"])
	// Output:
	// order: [A B D C E]
	// path to E: [A D E] hops: 2
}
