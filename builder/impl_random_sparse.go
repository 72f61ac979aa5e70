// SPDX-License-Identifier: MIT
// Package: travelgraph/builder
//
// impl_random_sparse.go — RandomSparse(n, p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p = 0 and p = 1
//     are deterministic and need no RNG.
//   • Pairs {i,j}, i<j, are visited in lexicographic order; each is kept
//     when rng.Float64() < p. No self-loops.
//
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/travelgraph/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds a random graph on n vertices
// where each pair is joined independently with probability p.
func RandomSparse(n int, p float64) Constructor[string] {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				v := cfg.idFn(j)
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w: %w",
						methodRandomSparse, u, v, w, ErrConstructFailed, err)
				}
			}
		}

		return nil
	}
}
