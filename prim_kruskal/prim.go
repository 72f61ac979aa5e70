// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex using a lazy min-heap of candidate vertices.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/travelgraph/core"
)

// Prim computes the minimum spanning tree of the component containing root.
//
// Steps:
//  1. Validate: graph != nil (ErrNilGraph), root present (ErrVertexNotFound).
//  2. Seed the heap with (0, root, no predecessor). The visited set is empty.
//  3. Pop the cheapest entry. If its vertex is visited, discard it.
//     Otherwise mark it visited, record its entry weight and, if it has a
//     predecessor, the tree edge (pred, v).
//  4. Push (w, nbr, v) for every unvisited neighbor of v.
//  5. Stop when the heap is empty or every vertex is visited.
//
// A disconnected graph yields the tree of the reachable component. This is
// not an error; compare Tree.Len with g.VertexCount to detect it.
//
// Equal-weight candidates pop in push order, so with core.WithOrder the
// resulting tree is reproducible.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[K comparable](g *core.Graph[K], root K) (*Tree[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, root)
	}

	n := g.VertexCount()
	t := &Tree[K]{
		Root:        root,
		Edges:       make([]core.Edge[K], 0, n-1),
		EntryWeight: make(map[K]float64, n),
	}
	visited := make(map[K]struct{}, n)

	pq := &candidatePQ[K]{}
	heap.Init(pq)
	var seq uint64
	push := func(c candidate[K]) {
		c.seq = seq
		seq++
		heap.Push(pq, c)
	}
	push(candidate[K]{id: root})

	for pq.Len() > 0 && len(visited) < n {
		c := heap.Pop(pq).(candidate[K])
		if _, ok := visited[c.id]; ok {
			continue
		}
		visited[c.id] = struct{}{}
		t.EntryWeight[c.id] = c.weight
		if c.hasPred {
			t.Edges = append(t.Edges, core.Edge[K]{From: c.pred, To: c.id, Weight: c.weight})
			t.Total += c.weight
		}

		for nbr, w := range g.NeighborWeights(c.id) {
			if _, ok := visited[nbr]; ok {
				continue
			}
			push(candidate[K]{id: nbr, weight: w, pred: c.id, hasPred: true})
		}
	}

	return t, nil
}

// candidate is a vertex offered to the tree through the edge pred–id.
type candidate[K comparable] struct {
	id      K
	weight  float64
	pred    K
	hasPred bool
	seq     uint64
}

// candidatePQ implements heap.Interface as a min-heap ordered by weight, then push order.
type candidatePQ[K comparable] []candidate[K]

// Len returns the number of candidates in the priority queue.
func (pq candidatePQ[K]) Len() int { return len(pq) }

// Less compares by weight; equal weights fall back to push order.
func (pq candidatePQ[K]) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
func (pq candidatePQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *candidatePQ[K]) Push(x any) { *pq = append(*pq, x.(candidate[K])) }

// Pop removes and returns the last candidate. Called by heap.Pop.
func (pq *candidatePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
