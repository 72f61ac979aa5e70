// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - The result covers every vertex: unreachable ones keep distance +Inf and
//     no predecessor; the source has distance 0 and no predecessor.
//
// Tie-breaking:
//
//   - A recorded distance is only replaced by a strictly smaller one, so among
//     equal-cost paths the first one discovered is kept.
//   - Heap entries with equal distance pop in push order. Together with
//     core.WithOrder this makes paths reproducible between runs.
//
// Options:
//
//	WithMaxDistance(max float64)        // do not settle vertices beyond max
//	WithInfEdgeThreshold(t float64)     // edges with weight >= t are walls
//
// Invalid option values are recorded and surfaced when Dijkstra is called,
// never via panic.
//
// API reference:
//
//	func Dijkstra[K comparable](g *core.Graph[K], source K, opts ...Option) (*Result[K], error)
//
//	(*Result[K]).Distance(v K) float64
//	(*Result[K]).Reachable(v K) bool
//	(*Result[K]).Predecessor(v K) (K, bool)
//	(*Result[K]).PathTo(dest K) ([]K, error)
//	(*Result[K]).Entries() map[K]Entry[K]
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  source absent; wraps core.ErrVertexNotFound.
//   - ErrBadMaxDistance:  negative or NaN MaxDistance.
//   - ErrBadInfThreshold: zero, negative or NaN InfEdgeThreshold.
//   - ErrUnreachable:     PathTo on a vertex with infinite distance.
//
// Thread safety:
//
// Dijkstra only reads g. Concurrent runs on the same graph are safe as long
// as nobody mutates the graph meanwhile.
package dijkstra
