// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, GraphOption, sentinel errors and constructors.
// Policy:
//   - Vertex identity is the type parameter K; equality and hashing are Go map-key semantics.
//   - The graph is undirected: every stored weight is mirrored.
//   - No internal locking; see doc.go for the ownership model.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidWeight indicates a negative or NaN edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")
)

// Edge is an undirected weighted connection between From and To.
//
// Edges returned by the graph are values; mutating them does not affect the graph.
type Edge[K comparable] struct {
	// From is one endpoint. For tree edges it is the endpoint already in the tree.
	From K

	// To is the other endpoint.
	To K

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption[K comparable] func(g *Graph[K])

// WithOrder installs a total order over vertices. When present, Vertices,
// Edges, Neighbors and NeighborWeights enumerate in ascending order under cmp,
// which makes every traversal built on them reproducible.
//
// cmp follows the cmp.Compare contract: negative if a<b, zero if equal, positive if a>b.
func WithOrder[K comparable](cmp func(a, b K) int) GraphOption[K] {
	return func(g *Graph[K]) { g.order = cmp }
}

// WithCapacity pre-sizes the internal maps for n vertices.
func WithCapacity[K comparable](n int) GraphOption[K] {
	return func(g *Graph[K]) {
		if n > 0 {
			g.vertices = make(map[K]struct{}, n)
			g.adjacency = make(map[K]map[K]float64, n)
		}
	}
}

// Graph is an undirected weighted graph keyed by any comparable vertex type.
//
// adjacency[u][v] holds the weight of edge u–v; adjacency[v][u] always holds
// the same value. Every vertex owns a (possibly empty) neighbor map, so
// membership in vertices and in adjacency never diverge.
//
// A Graph is not safe for concurrent mutation. Read-only methods and the
// traversal packages may run concurrently against a graph nobody mutates.
type Graph[K comparable] struct {
	vertices  map[K]struct{}
	adjacency map[K]map[K]float64

	// order is the optional enumeration order (nil: map order).
	order func(a, b K) int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(1) plus option cost.
func NewGraph[K comparable](opts ...GraphOption[K]) *Graph[K] {
	g := &Graph[K]{
		vertices:  make(map[K]struct{}),
		adjacency: make(map[K]map[K]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromEdges builds a graph from an initial vertex set and a list of weighted
// edges. Edge endpoints missing from vertices are added implicitly.
//
// Errors:
//   - ErrInvalidWeight (wrapped with the offending edge) on the first bad weight.
//
// Complexity: O(V + E).
func FromEdges[K comparable](vertices []K, edges []Edge[K], opts ...GraphOption[K]) (*Graph[K], error) {
	g := NewGraph(opts...)
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %d (%v–%v): %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

// Ordered reports whether the graph was built WithOrder.
func (g *Graph[K]) Ordered() bool { return g.order != nil }

// Compare orders a and b with the installed order. Without one it returns 0
// for every pair, which keeps stable sorts in insertion order.
func (g *Graph[K]) Compare(a, b K) int {
	if g.order == nil {
		return 0
	}

	return g.order(a, b)
}

// validWeight rejects weights Dijkstra and Prim cannot reason about.
// +Inf is allowed: the edge exists but never improves a finite distance.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && w >= 0
}
