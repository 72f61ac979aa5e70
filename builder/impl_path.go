// SPDX-License-Identifier: MIT
// Package: travelgraph/builder
//
// impl_path.go — Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertices cfg.idFn(0..n-1); edges i-1 — i in increasing i.
//   • Weights from cfg.weightFn(cfg.rng).

package builder

import (
	"fmt"

	"github.com/katalvlaran/travelgraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor[string] {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.weightFn(cfg.rng)
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w: %w", methodPath, u, v, w, ErrConstructFailed, err)
			}
		}

		return nil
	}
}
