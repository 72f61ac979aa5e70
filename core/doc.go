// Package core provides the generic, undirected, weighted Graph that every
// traversal in this module operates on.
//
// The Graph G = (V,E) is keyed by any comparable vertex type K:
//
//   - Vertex identity is Go map-key equality; no payload is stored.
//     Keep metadata (coordinates, names) beside the graph, keyed by K.
//   - Every edge is undirected. adjacency[u][v] == adjacency[v][u] always holds.
//   - Weights are non-negative float64; AddEdge rejects negatives and NaN
//     with ErrInvalidWeight. +Inf is allowed.
//   - One weight per vertex pair. Re-adding an edge overwrites its weight.
//
// Configuration Options (GraphOption):
//
//	– WithOrder(cmp func(a, b K) int)
//	    Deterministic enumeration for Vertices, Edges, Neighbors and
//	    NeighborWeights. Without it iteration follows Go map order.
//
//	– WithCapacity(n int)
//	    Pre-size internal maps.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v K)                         // O(1), idempotent
//	HasVertex(v K) bool                    // O(1)
//	RemoveVertex(v K)                      // O(deg(v)), no-op if absent
//
//	// Edge lifecycle
//	AddEdge(u, v K, w float64) error       // O(1), adds missing endpoints
//	RemoveEdge(u, v K, w float64) bool     // O(1), only if stored weight == w
//	DeleteEdge(u, v K) bool                // O(1), unconditional
//	HasEdge(u, v K) bool                   // O(1)
//	Weight(u, v K) (float64, bool)         // O(1)
//
//	// Query
//	Neighbors(v K) iter.Seq[K]             // lazy, restartable, empty if unknown
//	NeighborWeights(v K) iter.Seq2[K, float64]
//	Vertices() []K                         // O(V) / O(V log V) ordered
//	Edges() []Edge[K]                      // each undirected edge once
//	VertexCount(), EdgeCount(), Degree(v)
//
//	// Copy
//	Clone() *Graph[K]                      // O(V+E) deep copy
//
// Concurrency:
//
// A Graph performs no locking. Confine it to one owner while it is mutated.
// Once construction is finished, any number of goroutines may run bfs,
// dijkstra and prim_kruskal traversals against it concurrently, as long as
// nobody mutates it meanwhile.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrInvalidWeight  - negative or NaN weight.
package core
