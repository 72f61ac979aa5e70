// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() follows WithOrder when installed, map order otherwise.

package core

import "slices"

// AddVertex inserts v if missing (idempotent).
//
// Implementation:
//   - Stage 1: Check membership in the vertex set.
//   - Stage 2: Register v and bootstrap an empty neighbor map.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K]) AddVertex(v K) {
	if _, exists := g.vertices[v]; exists {
		return // no-op for existing vertex
	}
	g.vertices[v] = struct{}{}
	g.adjacency[v] = make(map[K]float64)
}

// HasVertex reports whether v exists.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(v K) bool {
	_, ok := g.vertices[v]

	return ok
}

// RemoveVertex deletes v and every edge referencing it, in both directions.
// Removing an unknown vertex is a silent no-op.
//
// Implementation:
//   - Stage 1: Return early if v is absent.
//   - Stage 2: Drop the mirror entry from each neighbor's map.
//   - Stage 3: Drop v's own neighbor map and its vertex record.
//
// Because adjacency is symmetric, only v's neighbors can reference v, so the
// scan is bounded by deg(v) rather than V.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph[K]) RemoveVertex(v K) {
	nbrs, exists := g.adjacency[v]
	if !exists {
		return
	}
	for u := range nbrs {
		delete(g.adjacency[u], v)
	}
	delete(g.adjacency, v)
	delete(g.vertices, v)
}

// Vertices returns every vertex. The slice is freshly allocated.
//
// Determinism:
//   - Sorted under WithOrder; otherwise unspecified.
//
// Complexity:
//   - Time O(V log V) ordered, O(V) otherwise. Space O(V).
func (g *Graph[K]) Vertices() []K {
	out := make([]K, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	if g.order != nil {
		slices.SortFunc(out, g.order)
	}

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[K]) VertexCount() int { return len(g.vertices) }

// Degree returns the number of distinct neighbors of v (a self-loop counts
// once) and ErrVertexNotFound for an unknown vertex.
func (g *Graph[K]) Degree(v K) (int, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// Clone returns an independent deep copy of the topology and options.
// Mutating the clone never affects g.
//
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	out := &Graph[K]{
		vertices:  make(map[K]struct{}, len(g.vertices)),
		adjacency: make(map[K]map[K]float64, len(g.adjacency)),
		order:     g.order,
	}
	for v := range g.vertices {
		out.vertices[v] = struct{}{}
	}
	for v, nbrs := range g.adjacency {
		cp := make(map[K]float64, len(nbrs))
		for u, w := range nbrs {
			cp[u] = w
		}
		out.adjacency[v] = cp
	}

	return out
}
