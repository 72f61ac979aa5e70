package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/travelgraph/builder"
	"github.com/katalvlaran/travelgraph/core"
)

// ExampleComplete joins three cities with distances from a lookup table.
func ExampleComplete() {
	miles := map[[2]string]float64{
		{"Boston", "Chicago"}: 851,
		{"Boston", "Denver"}:  1768,
		{"Chicago", "Denver"}: 920,
	}
	weight := func(u, v string) (float64, error) {
		return miles[[2]string{u, v}], nil
	}

	g, err := builder.BuildGraph(nil,
		[]core.GraphOption[string]{core.WithOrder[string](strings.Compare)},
		builder.Complete([]string{"Boston", "Chicago", "Denver"}, weight),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s–%s %.0f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// Boston–Chicago 851
	// Boston–Denver 1768
	// Chicago–Denver 920
}
