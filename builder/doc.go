// Package builder provides deterministic, functional-options style graph
// construction on top of core.Graph.
//
// Components:
//
//   - BuildGraph / Apply: run Constructors in order against a new or existing graph.
//   - Constructors:
//     – Complete(ids, weight): every pair of the given IDs, weighted per pair
//     (the venue graph uses great-circle distance here).
//     – Path(n):               a simple path over generated IDs.
//     – RandomSparse(n, p):    an Erdős–Rényi G(n,p) fixture.
//   - Options:
//     – WithSeed / WithRand:   RNG for stochastic constructors.
//     – WithIDScheme:          vertex naming (default "0", "1", ...).
//     – WithWeightFn:          edge weights for generated edges (default 1).
//
// Guarantees:
//
//   - Same inputs, options and seed produce identical graphs.
//   - Constructors never panic; they return ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed wrapped
//     with the constructor name.
//   - Option constructors panic on nil functions (programmer error).
package builder
