// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travelgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
	VertexF = "F"
)

// buildFive constructs the five-vertex fixture used across the module:
//
//	A—B(100), B—C(200), A—D(300), D—E(400), C—E(150).
func buildFive(t *testing.T) *core.Graph[string] {
	t.Helper()
	g, err := core.FromEdges(
		[]string{VertexA, VertexB, VertexC, VertexD, VertexE},
		[]core.Edge[string]{
			{From: VertexA, To: VertexB, Weight: 100},
			{From: VertexB, To: VertexC, Weight: 200},
			{From: VertexA, To: VertexD, Weight: 300},
			{From: VertexD, To: VertexE, Weight: 400},
			{From: VertexC, To: VertexE, Weight: 150},
		},
		core.WithOrder[string](strings.Compare),
	)
	require.NoError(t, err)

	return g
}

// collect drains a neighbor sequence into a sorted slice.
func collect(g *core.Graph[string], v string) []string {
	out := slices.Collect(g.Neighbors(v))
	slices.Sort(out)

	return out
}

func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex(VertexA)
	g.AddVertex(VertexA)

	assert.True(t, g.HasVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())
	assert.Empty(t, collect(g, VertexA), "fresh vertex has no neighbors")
}

func TestGraph_AddVertexF(t *testing.T) {
	g := buildFive(t)
	g.AddVertex(VertexF)
	assert.True(t, g.HasVertex(VertexF))
	assert.Equal(t, 6, g.VertexCount())
}

func TestGraph_RemoveVertex(t *testing.T) {
	g := buildFive(t)
	g.RemoveVertex(VertexA)

	assert.False(t, g.HasVertex(VertexA))
	// No dangling references anywhere.
	for _, v := range g.Vertices() {
		assert.NotContains(t, collect(g, v), VertexA, "neighbors of %s", v)
	}
	assert.False(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexD, VertexA))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestGraph_RemoveVertexUnknownIsNoop(t *testing.T) {
	g := buildFive(t)
	g.RemoveVertex("Z")
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
}

func TestGraph_AddEdgeSymmetric(t *testing.T) {
	g := buildFive(t)
	require.NoError(t, g.AddEdge(VertexA, VertexF, 123))

	assert.Contains(t, collect(g, VertexA), VertexF)
	assert.Contains(t, collect(g, VertexF), VertexA)

	wAF, ok := g.Weight(VertexA, VertexF)
	require.True(t, ok)
	wFA, ok := g.Weight(VertexF, VertexA)
	require.True(t, ok)
	assert.Equal(t, 123.0, wAF)
	assert.Equal(t, wAF, wFA)
}

func TestGraph_AddEdgeOverwrites(t *testing.T) {
	g := buildFive(t)
	require.NoError(t, g.AddEdge(VertexB, VertexA, 42))

	w, _ := g.Weight(VertexA, VertexB)
	assert.Equal(t, 42.0, w)
	assert.Equal(t, 5, g.EdgeCount(), "overwrite must not add a parallel edge")
}

func TestGraph_AddEdgeInvalidWeight(t *testing.T) {
	g := core.NewGraph[string]()
	for _, w := range []float64{-1, math.NaN(), math.Inf(-1)} {
		err := g.AddEdge(VertexA, VertexB, w)
		assert.ErrorIs(t, err, core.ErrInvalidWeight, "weight %v", w)
	}
	assert.Zero(t, g.VertexCount(), "rejected edge must not add endpoints")

	require.NoError(t, g.AddEdge(VertexA, VertexB, math.Inf(1)))
	assert.True(t, g.HasEdge(VertexA, VertexB))
}

func TestFromEdges_InvalidWeight(t *testing.T) {
	_, err := core.FromEdges([]string{VertexA}, []core.Edge[string]{
		{From: VertexA, To: VertexB, Weight: 1},
		{From: VertexB, To: VertexC, Weight: -5},
	})
	require.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.Contains(t, err.Error(), "edge 1")
}

func TestGraph_RemoveEdgeExactWeight(t *testing.T) {
	g := buildFive(t)

	// Wrong weight leaves the edge alone.
	assert.False(t, g.RemoveEdge(VertexA, VertexB, 999))
	assert.Contains(t, collect(g, VertexA), VertexB)

	// Matching weight removes both directions.
	assert.True(t, g.RemoveEdge(VertexA, VertexB, 100))
	assert.NotContains(t, collect(g, VertexA), VertexB)
	assert.NotContains(t, collect(g, VertexB), VertexA)

	// Second removal is a no-op.
	assert.False(t, g.RemoveEdge(VertexA, VertexB, 100))
	// Unknown endpoints are a no-op too.
	assert.False(t, g.RemoveEdge("X", "Y", 1))
}

func TestGraph_RemoveEdgeNoTolerance(t *testing.T) {
	g := core.NewGraph[string]()
	// Summed at run time; a constant expression would fold to exactly 0.3.
	a, b := 0.1, 0.2
	w := a + b
	require.NotEqual(t, 0.3, w)
	require.NoError(t, g.AddEdge(VertexA, VertexB, w))

	assert.False(t, g.RemoveEdge(VertexA, VertexB, 0.3), "0.1+0.2 != 0.3 in float64")
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.RemoveEdge(VertexB, VertexA, w))
	assert.False(t, g.HasEdge(VertexA, VertexB))
}

func TestGraph_DeleteEdge(t *testing.T) {
	g := buildFive(t)
	assert.True(t, g.DeleteEdge(VertexC, VertexE))
	assert.False(t, g.HasEdge(VertexE, VertexC))
	assert.False(t, g.DeleteEdge(VertexC, VertexE))
	// Endpoints survive.
	assert.True(t, g.HasVertex(VertexC))
	assert.True(t, g.HasVertex(VertexE))
}

func TestGraph_NeighborsUnknownIsEmpty(t *testing.T) {
	g := buildFive(t)
	n := 0
	for range g.Neighbors("nope") {
		n++
	}
	assert.Zero(t, n)
}

func TestGraph_NeighborsRestartableAndOrdered(t *testing.T) {
	g := buildFive(t)
	seq := g.Neighbors(VertexA)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff([]string{VertexB, VertexD}, first); diff != "" {
		t.Errorf("Neighbors(A) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, first, second, "sequence must be restartable")

	// Early break stops the iteration.
	var got []string
	for v := range seq {
		got = append(got, v)
		break
	}
	assert.Equal(t, []string{VertexB}, got)
}

func TestGraph_NeighborWeights(t *testing.T) {
	g := buildFive(t)
	got := map[string]float64{}
	for v, w := range g.NeighborWeights(VertexE) {
		got[v] = w
	}
	assert.Equal(t, map[string]float64{VertexC: 150, VertexD: 400}, got)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 1, 7))
	require.NoError(t, g.AddEdge(1, 2, 3))

	assert.Equal(t, 2, g.EdgeCount())
	d, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Len(t, g.Edges(), 2)

	g.RemoveVertex(1)
	assert.Zero(t, g.EdgeCount())
}

func TestGraph_DegreeUnknown(t *testing.T) {
	g := core.NewGraph[string]()
	_, err := g.Degree(VertexA)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_EdgesOrderedOnce(t *testing.T) {
	g := buildFive(t)
	want := []core.Edge[string]{
		{From: VertexA, To: VertexB, Weight: 100},
		{From: VertexA, To: VertexD, Weight: 300},
		{From: VertexB, To: VertexC, Weight: 200},
		{From: VertexC, To: VertexE, Weight: 150},
		{From: VertexD, To: VertexE, Weight: 400},
	}
	if diff := cmp.Diff(want, g.Edges()); diff != "" {
		t.Errorf("Edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{VertexA, VertexB, VertexC, VertexD, VertexE}, g.Vertices())
}

func TestGraph_EdgesUnorderedCount(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 10; i++ {
		for j := i + 1; j < 10; j++ {
			require.NoError(t, g.AddEdge(i, j, float64(i+j)))
		}
	}
	assert.Len(t, g.Edges(), 45)
	assert.Equal(t, 45, g.EdgeCount())
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := buildFive(t)
	c := g.Clone()
	c.RemoveVertex(VertexC)
	require.NoError(t, c.AddEdge(VertexA, VertexE, 1))

	assert.True(t, g.HasVertex(VertexC))
	assert.False(t, g.HasEdge(VertexA, VertexE))
	assert.True(t, c.Ordered())
	assert.Equal(t, []string{VertexA, VertexB, VertexD, VertexE}, c.Vertices())
}

func TestGraph_CompareWithoutOrder(t *testing.T) {
	g := core.NewGraph[string]()
	assert.False(t, g.Ordered())
	assert.Zero(t, g.Compare("a", "b"))
}
