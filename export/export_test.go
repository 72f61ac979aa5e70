package export_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travelgraph/builder"
	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/dijkstra"
	"github.com/katalvlaran/travelgraph/export"
	"github.com/katalvlaran/travelgraph/prim_kruskal"
)

func buildFive(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph(core.WithOrder[string](strings.Compare))
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("B", "C", 200))
	require.NoError(t, g.AddEdge("A", "D", 300))
	require.NoError(t, g.AddEdge("D", "E", 400))
	require.NoError(t, g.AddEdge("C", "E", 150.5))

	return g
}

func TestConvert(t *testing.T) {
	out, err := export.Convert(buildFive(t))
	require.NoError(t, err)

	n, err := out.Order()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	adj, err := out.AdjacencyMap()
	require.NoError(t, err)
	assert.Len(t, adj["A"], 2)

	e, err := out.Edge("E", "C")
	require.NoError(t, err, "undirected edges resolve either way")
	assert.Equal(t, 151, e.Properties.Weight)
	assert.Equal(t, "150.50", e.Properties.Attributes["label"])

	_, err = export.Convert(nil)
	assert.ErrorIs(t, err, export.ErrNilGraph)
}

func TestDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.DOT(&buf, buildFive(t)))
	dot := buf.String()

	assert.Contains(t, dot, "graph")
	assert.Contains(t, dot, "--")
	assert.Contains(t, dot, `label="150.50"`)
	assert.Contains(t, dot, `label="400.00"`)
}

func TestTreeDOT(t *testing.T) {
	tree, err := prim_kruskal.Prim(buildFive(t), "A")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.TreeDOT(&buf, tree))
	assert.Contains(t, buf.String(), `label="100.00"`)
	assert.NotContains(t, buf.String(), `label="400.00"`)

	assert.ErrorIs(t, export.TreeDOT(&buf, nil), export.ErrNilGraph)
}

// TestDijkstra_AgreesWithDominikbraun cross-checks shortest distances against
// an independent implementation on random integer-weighted graphs.
func TestDijkstra_AgreesWithDominikbraun(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		g, err := builder.BuildGraph(
			[]builder.Option{
				builder.WithRand(r),
				builder.WithWeightFn(func(r *rand.Rand) float64 { return float64(1 + r.Intn(30)) }),
			},
			[]core.GraphOption[string]{core.WithOrder[string](strings.Compare)},
			builder.Path(12),
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)

		other, err := export.Convert(g)
		require.NoError(t, err)
		res, err := dijkstra.Dijkstra(g, "0")
		require.NoError(t, err)

		for _, v := range g.Vertices() {
			path, err := graph.ShortestPath(other, "0", v)
			require.NoError(t, err, "seed %d target %s", seed, v)
			sum := 0.0
			for i := 1; i < len(path); i++ {
				w, ok := g.Weight(path[i-1], path[i])
				require.True(t, ok)
				sum += w
			}
			assert.Equal(t, sum, res.Distance(v), fmt.Sprintf("seed %d target %s", seed, v))
		}
	}
}
