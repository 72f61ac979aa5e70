// Package builder provides helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import "math/rand"

// DefaultEdgeWeight is the weight assigned to each edge when no
// custom WeightFn or pair weight is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// PairWeightFn computes the weight of the edge u–v from its endpoints,
// e.g. the great-circle distance between two venues.
type PairWeightFn[K comparable] func(u, v K) (float64, error)

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}
