package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/dijkstra"
)

// ExampleDijkstra finds the cheapest route between two cities.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithOrder[string](strings.Compare))
	_ = g.AddEdge("Boston", "New York", 190)
	_ = g.AddEdge("New York", "Philadelphia", 80)
	_ = g.AddEdge("Boston", "Philadelphia", 310)

	res, _ := dijkstra.Dijkstra(g, "Boston")
	path, _ := res.PathTo("Philadelphia")
	fmt.Println(path, res.Distance("Philadelphia"))

	// Output:
	// [Boston New York Philadelphia] 270
}

// ExampleWithInfEdgeThreshold treats heavy edges as closed roads.
func ExampleWithInfEdgeThreshold() {
	g := core.NewGraph(core.WithOrder[string](strings.Compare))
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1000)

	res, _ := dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(500))
	fmt.Println(res.Reachable("B"), res.Reachable("C"))

	// Output:
	// true false
}
