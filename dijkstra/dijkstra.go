// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - core.Graph rejects negative weights at insertion, so no pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We skip relaxations whose candidate distance exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     skipping any popped entry whose distance is worse than the recorded best.
//   - Heap ties are broken by push sequence, so equal-cost candidates are expanded
//     in discovery order and the first equal-weight path found wins.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/travelgraph/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain source (ErrVertexNotFound).
//
// The result covers every vertex: Dist[source] == 0 with no predecessor,
// unreachable vertices keep +Inf and no predecessor.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[K comparable](g *core.Graph[K], source K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	V := g.VertexCount()
	r := &runner[K]{
		g:       g,
		options: cfg,
		res: &Result[K]{
			Source: source,
			Dist:   make(map[K]float64, V),
			Prev:   make(map[K]K, V),
		},
		pq: make(nodePQ[K], 0, V),
	}
	r.init()
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[K comparable] struct {
	g       *core.Graph[K] // The input graph; read-only within Dijkstra.
	options Options
	res     *Result[K]
	pq      nodePQ[K] // Min-heap of nodeItem for lazy priority queue.
	seq     uint64    // push counter used as heap tie-breaker
}

// init sets dist[v] = +Inf for all v, dist[source] = 0 and seeds the heap.
func (r *runner[K]) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.res.Source] = 0

	heap.Init(&r.pq)
	r.push(r.res.Source, 0)
}

// push adds (v, d) with the next sequence number.
func (r *runner[K]) push(v K, d float64) {
	heap.Push(&r.pq, nodeItem[K]{id: v, dist: d, seq: r.seq})
	r.seq++
}

// process pops the closest vertex until the heap is empty.
// Entries whose distance is worse than the recorded best are stale and skipped.
func (r *runner[K]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem[K])
		if item.dist > r.res.Dist[item.id] {
			continue
		}
		r.relax(item.id, item.dist)
	}
}

// relax examines each edge leaving u and improves neighbor distances.
// Only strictly shorter candidates replace a recorded distance.
func (r *runner[K]) relax(u K, du float64) {
	for v, w := range r.g.NeighborWeights(u) {
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := du + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		r.push(v, newDist)
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem[K comparable] struct {
	id   K
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by push order.
type nodePQ[K comparable] []nodeItem[K]

// Len returns the number of items in the heap.
func (pq nodePQ[K]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority; ties by seq.
func (pq nodePQ[K]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[K]) Push(x any) { *pq = append(*pq, x.(nodeItem[K])) }

// Pop removes and returns the last element after heap adjustments.
func (pq *nodePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
