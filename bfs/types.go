// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/travelgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	// It wraps core.ErrVertexNotFound so callers may test either.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex not found: %w", core.ErrVertexNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a vertex outside the BFS tree.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor K) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnVisit:        func(K, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[K comparable](fn func(v K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Source: the start vertex.
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//     Exactly the reached vertices appear here.
//   - Parent: map from vertex to its predecessor in the BFS tree.
//     The source has no entry, which is its "no predecessor" marker.
type Result[K comparable] struct {
	Source K
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// Reached reports whether v was discovered.
func (r *Result[K]) Reached(v K) bool {
	_, ok := r.Depth[v]

	return ok
}

// Predecessor returns the BFS parent of v. ok is false for the source and
// for vertices that were not reached.
func (r *Result[K]) Predecessor(v K) (K, bool) {
	p, ok := r.Parent[v]

	return p, ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := make([]K, 0, r.Depth[dest]+1)
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
