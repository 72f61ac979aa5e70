// Package bfs provides breadth-first search over a core.Graph,
// returning fewest-hop parent links, depths, and visit order.
//
// BFS explores vertices in increasing hop count from a start vertex,
// ignoring edge weights, with an optional visit hook, depth limit,
// and neighbor filter.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/travelgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph *core.Graph[K]
	opts  Options[K]
	queue []queueItem[K]
	res   *Result[K]
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Neighbors are enqueued in g.Neighbors order, so the traversal is
// reproducible for graphs built with core.WithOrder.
func BFS[K comparable](g *core.Graph[K], source K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, source)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker[K]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[K], 0, n),
		res: &Result[K]{
			Source: source,
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// Seed queue with source (no parent)
	w.res.Depth[source] = 0
	w.queue = append(w.queue, queueItem[K]{id: source})

	return w.res, w.loop()
}

// loop processes the queue until empty or a hook error.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[K]) visit(item queueItem[K]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then records the parent
// and depth of each unseen neighbor and enqueues it.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[nbr]; seen {
			continue
		}
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem[K]{id: nbr, depth: nextDepth})
	}
}
