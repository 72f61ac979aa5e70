package builder_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travelgraph/builder"
	"github.com/katalvlaran/travelgraph/core"
)

// ordered is the graph option used by every fixture in this file.
var ordered = []core.GraphOption[string]{core.WithOrder[string](strings.Compare)}

func TestComplete_PairWeights(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	weight := func(u, v string) (float64, error) {
		return float64(len(u+v)) * 10, nil
	}
	g, err := builder.BuildGraph(nil, ordered, builder.Complete(ids, weight))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, 20.0, e.Weight)
	}
}

func TestComplete_DefaultWeightAndInts(t *testing.T) {
	g, err := builder.BuildGraph[int](nil, nil, builder.Complete([]int{1, 2, 3}, nil))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	w, ok := g.Weight(1, 3)
	require.True(t, ok)
	assert.Equal(t, builder.DefaultEdgeWeight, w)
}

func TestComplete_DuplicateIDsSkipSelfLoops(t *testing.T) {
	g, err := builder.BuildGraph(nil, ordered, builder.Complete([]string{"A", "A", "B"}, nil))
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
	assert.False(t, g.HasEdge("A", "A"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestComplete_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, ordered, builder.Complete[string](nil, nil))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	boom := errors.New("boom")
	_, err = builder.BuildGraph(nil, ordered, builder.Complete([]string{"A", "B"},
		func(_, _ string) (float64, error) { return 0, boom }))
	assert.ErrorIs(t, err, boom)

	_, err = builder.BuildGraph(nil, ordered, builder.Complete([]string{"A", "B"},
		func(_, _ string) (float64, error) { return math.NaN(), nil }))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithIDScheme(letterID), builder.WithWeightFn(func(*rand.Rand) float64 { return 7 })},
		ordered,
		builder.Path(4),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Weight: 7},
		{From: "B", To: "C", Weight: 7},
		{From: "C", To: "D", Weight: 7},
	}, g.Edges())

	g, err = builder.BuildGraph(nil, ordered, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, g.Vertices())
	w, _ := g.Weight("0", "1")
	assert.Equal(t, builder.DefaultEdgeWeight, w)

	_, err = builder.BuildGraph(nil, ordered, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse_Validation(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor[string]
		opts []builder.Option
		want error
	}{
		{"n=0", builder.RandomSparse(0, 0.5), nil, builder.ErrTooFewVertices},
		{"p<0", builder.RandomSparse(3, -0.1), nil, builder.ErrInvalidProbability},
		{"p>1", builder.RandomSparse(3, 1.1), nil, builder.ErrInvalidProbability},
		{"p NaN", builder.RandomSparse(3, math.NaN()), nil, builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, ordered, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(nil, ordered, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	g, err = builder.BuildGraph(nil, ordered, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
}

func TestRandomSparse_Deterministic(t *testing.T) {
	uniform := func(r *rand.Rand) float64 { return 1 + 49*r.Float64() }
	prefixed := func(i int) string { return "v" + strconv.Itoa(i) }
	opts := []builder.Option{builder.WithSeed(99), builder.WithWeightFn(uniform), builder.WithIDScheme(prefixed)}
	a, err := builder.BuildGraph(opts, ordered, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	opts = []builder.Option{builder.WithSeed(99), builder.WithWeightFn(uniform), builder.WithIDScheme(prefixed)}
	b, err := builder.BuildGraph(opts, ordered, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	assert.Contains(t, a.Vertices(), "v19")
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.Less(t, e.Weight, 50.0)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph[string](nil, ordered, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestApply(t *testing.T) {
	g := core.NewGraph(ordered...)
	require.NoError(t, builder.Apply(g, nil, builder.Path(3)))
	assert.Equal(t, 2, g.EdgeCount())

	err := builder.Apply[string](nil, nil, builder.Path(3))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "7", builder.DefaultIDFn(7))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
}

// letterID names vertices A, B, C, ...
func letterID(i int) string { return string(rune('A' + i)) }

func TestOptionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}
