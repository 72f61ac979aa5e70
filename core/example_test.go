package core_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/travelgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an ordered graph so enumeration is reproducible.
	g := core.NewGraph(core.WithOrder[string](strings.Compare))

	// 2) Add edges (auto-adds vertices A, B, C).
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "A", 9)

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Neighbors of B:", slices.Collect(g.Neighbors("B")))

	// 3) Weight acts as a removal token.
	fmt.Println("remove A–B with 4:", g.RemoveEdge("A", "B", 4))
	fmt.Println("remove A–B with 5:", g.RemoveEdge("A", "B", 5))

	// 4) Remove a vertex and its edges.
	g.RemoveVertex("C")
	fmt.Println("After removing C:", g.Vertices(), "edges:", g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Neighbors of B: [A C]
	// remove A–B with 4: false
	// remove A–B with 5: true
	// After removing C: [A B] edges: 0
}
