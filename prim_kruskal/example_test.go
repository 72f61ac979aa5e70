package prim_kruskal_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/prim_kruskal"
)

// ExamplePrim builds the cheapest network linking four towns.
func ExamplePrim() {
	g := core.NewGraph(core.WithOrder[string](strings.Compare))
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "D", 7)
	_ = g.AddEdge("B", "D", 5)

	tree, _ := prim_kruskal.Prim(g, "A")
	for _, e := range tree.Edges {
		fmt.Printf("%s-%s %.0f\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", tree.Total)

	// Output:
	// A-C 1
	// C-B 2
	// B-D 5
	// total: 8
}

// ExampleKruskal reports a spanning forest for a graph with two components.
func ExampleKruskal() {
	g := core.NewGraph(core.WithOrder[string](strings.Compare))
	_ = g.AddEdge("A", "B", 3)
	_ = g.AddEdge("X", "Y", 2)

	f, _ := prim_kruskal.Kruskal(g)
	fmt.Println(len(f.Edges), f.Total, f.Components, f.Spanning())

	// Output:
	// 2 5 2 false
}
