// SPDX-License-Identifier: MIT
// Package: travelgraph/builder
//
// impl_complete.go — Complete(ids, weight) constructor.
//
// Contract:
//   • len(ids) ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices in the given order, then each unordered pair {i,j}
//     with i<j exactly once, in lexicographic (i,j) order.
//   • Weight: weight(ids[i], ids[j]) if weight != nil, else cfg.weightFn(cfg.rng).
//   • Duplicate IDs collapse (core.AddVertex is idempotent); a duplicate pair
//     is skipped instead of becoming a self-loop.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/travelgraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that joins every pair of ids with one edge.
func Complete[K comparable](ids []K, weight PairWeightFn[K]) Constructor[K] {
	return func(g *core.Graph[K], cfg builderConfig) error {
		if len(ids) < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, len(ids), minCompleteNodes, ErrTooFewVertices)
		}

		for _, id := range ids {
			g.AddVertex(id)
		}

		var (
			w   float64
			err error
		)
		for i := 0; i < len(ids); i++ {
			u := ids[i]
			for j := i + 1; j < len(ids); j++ {
				v := ids[j]
				if u == v {
					continue
				}
				if weight != nil {
					if w, err = weight(u, v); err != nil {
						return fmt.Errorf("%s: weight(%v, %v): %w", methodComplete, u, v, err)
					}
				} else {
					w = cfg.weightFn(cfg.rng)
				}
				if err = g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%v–%v, w=%g): %w: %w", methodComplete, u, v, w, ErrConstructFailed, err)
				}
			}
		}

		return nil
	}
}
