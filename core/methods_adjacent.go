// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborWeights).
//
// Determinism:
//   - Sorted under WithOrder; otherwise Go map order.

package core

import (
	"iter"
	"slices"
)

// Neighbors returns a lazy sequence over the neighbor IDs of v.
//
// Behavior highlights:
//   - Backed by the neighbor map v owns at call time. Edge changes on v show
//     up in later iterations; if v itself is removed, the sequence keeps
//     yielding the neighbor set it had at removal.
//   - Finite and restartable: every range over the sequence starts afresh.
//   - Unknown v yields an empty sequence (no error).
//
// Complexity:
//   - O(1) to obtain; O(d) per full iteration, O(d log d) under WithOrder.
func (g *Graph[K]) Neighbors(v K) iter.Seq[K] {
	nbrs := g.adjacency[v]
	order := g.order

	return func(yield func(K) bool) {
		if order == nil {
			for u := range nbrs {
				if !yield(u) {
					return
				}
			}
			return
		}
		for _, u := range sortedKeys(nbrs, order) {
			if !yield(u) {
				return
			}
		}
	}
}

// NeighborWeights is Neighbors paired with the weight of each incident edge.
func (g *Graph[K]) NeighborWeights(v K) iter.Seq2[K, float64] {
	nbrs := g.adjacency[v]
	order := g.order

	return func(yield func(K, float64) bool) {
		if order == nil {
			for u, w := range nbrs {
				if !yield(u, w) {
					return
				}
			}
			return
		}
		for _, u := range sortedKeys(nbrs, order) {
			if !yield(u, nbrs[u]) {
				return
			}
		}
	}
}

// sortedKeys snapshots the keys of m sorted under order.
func sortedKeys[K comparable](m map[K]float64, order func(a, b K) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, order)

	return keys
}
