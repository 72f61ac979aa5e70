// Package dijkstra defines result types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; vertices beyond it stay at +Inf.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
//	– ErrUnreachable     from Result.PathTo for a vertex with no path.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/travelgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph. It wraps core.ErrVertexNotFound.
	ErrVertexNotFound = fmt.Errorf("dijkstra: source vertex not found in graph: %w", core.ErrVertexNotFound)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable indicates PathTo was asked for a vertex with infinite distance.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond stay at +Inf).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable (treated as infinite weight).
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold <= 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Entry is the (predecessor-or-none, total distance) pair of one vertex.
type Entry[K comparable] struct {
	Prev     K
	HasPrev  bool
	Distance float64
}

// Result is the outcome of a single-source Dijkstra run.
//
//   - Dist covers every vertex of the graph; unreachable vertices hold +Inf.
//   - Prev holds the predecessor on one shortest path for every reached
//     vertex except the source. Vertices absent from Prev have no predecessor.
type Result[K comparable] struct {
	Source K
	Dist   map[K]float64
	Prev   map[K]K
}

// Distance returns the shortest distance to v, +Inf when v is unreachable
// or unknown.
func (r *Result[K]) Distance(v K) float64 {
	d, ok := r.Dist[v]
	if !ok {
		return math.Inf(1)
	}

	return d
}

// Reachable reports whether v has a finite distance from the source.
func (r *Result[K]) Reachable(v K) bool {
	return !math.IsInf(r.Distance(v), 1)
}

// Predecessor returns v's predecessor on its shortest path.
// ok is false for the source and for unreachable vertices.
func (r *Result[K]) Predecessor(v K) (K, bool) {
	p, ok := r.Prev[v]

	return p, ok
}

// Entries returns the full vertex → (predecessor, distance) mapping.
func (r *Result[K]) Entries() map[K]Entry[K] {
	out := make(map[K]Entry[K], len(r.Dist))
	for v, d := range r.Dist {
		p, ok := r.Prev[v]
		out[v] = Entry[K]{Prev: p, HasPrev: ok, Distance: d}
	}

	return out
}

// PathTo reconstructs the shortest path source → dest by walking Prev.
// Returns ErrUnreachable when dest has no finite distance.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := []K{dest}
	for cur := dest; ; {
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
