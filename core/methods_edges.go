// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/DeleteEdge/HasEdge/Weight/Edges/EdgeCount.
//
// Determinism:
//   - Edges() is sorted by (From, To) under WithOrder, with From ≤ To.

package core

import (
	"fmt"
	"slices"
)

// AddEdge sets the undirected edge u–v to weight, adding missing endpoints.
// A previous weight for the pair is overwritten in both directions.
//
// Steps:
//  1. Validate weight (negative or NaN ⇒ ErrInvalidWeight, graph untouched).
//  2. Ensure both endpoints via AddVertex.
//  3. Store adjacency[u][v] and the mirror adjacency[v][u].
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(u, v K, weight float64) error {
	if !validWeight(weight) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}
	g.AddVertex(u)
	g.AddVertex(v)
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight

	return nil
}

// RemoveEdge removes u–v only if it exists and its stored weight equals
// weight exactly. Weight acts as a mutation token: a caller holding a stale
// weight cannot remove an edge someone has since re-weighted.
//
// Equality is exact float64 comparison with no tolerance; remove with the
// same value that was added. Reports whether the edge was removed.
//
// Complexity: O(1).
func (g *Graph[K]) RemoveEdge(u, v K, weight float64) bool {
	stored, ok := g.adjacency[u][v]
	if !ok || stored != weight {
		return false
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return true
}

// DeleteEdge removes u–v regardless of its weight.
// Reports whether an edge was present.
//
// Complexity: O(1).
func (g *Graph[K]) DeleteEdge(u, v K) bool {
	if _, ok := g.adjacency[u][v]; !ok {
		return false
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return true
}

// HasEdge reports whether u–v exists. Complexity: O(1).
func (g *Graph[K]) HasEdge(u, v K) bool {
	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of u–v and whether the edge exists.
// Complexity: O(1).
func (g *Graph[K]) Weight(u, v K) (float64, bool) {
	w, ok := g.adjacency[u][v]

	return w, ok
}

// Edges returns each undirected edge exactly once.
//
// Implementation:
//   - Stage 1: Walk adjacency; keep u–v when u has not been emitted as a
//     neighbor-owner before (tracked by a seen set).
//   - Stage 2: Under WithOrder, orient each edge so From ≤ To and sort by (From, To).
//
// Complexity:
//   - Time O(V + E) unordered, O(V + E log E) ordered. Space O(V + E).
func (g *Graph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.EdgeCount())
	done := make(map[K]struct{}, len(g.adjacency))
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if _, ok := done[v]; ok {
				continue // emitted from v's side already
			}
			out = append(out, Edge[K]{From: u, To: v, Weight: w})
		}
		done[u] = struct{}{}
	}
	if g.order == nil {
		return out
	}
	for i := range out {
		if g.order(out[i].From, out[i].To) > 0 {
			out[i].From, out[i].To = out[i].To, out[i].From
		}
	}
	slices.SortFunc(out, func(a, b Edge[K]) int {
		if c := g.order(a.From, b.From); c != 0 {
			return c
		}

		return g.order(a.To, b.To)
	})

	return out
}

// EdgeCount returns the number of undirected edges (self-loops count once).
//
// Complexity: O(V).
func (g *Graph[K]) EdgeCount() int {
	var ends, loops int
	for u, nbrs := range g.adjacency {
		ends += len(nbrs)
		if _, ok := nbrs[u]; ok {
			loops++
		}
	}

	// Each non-loop edge is stored twice, each loop once.
	return (ends-loops)/2 + loops
}
