// Package prim_kruskal provides two algorithms for minimum spanning trees over
// an undirected, weighted *core.Graph: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning tree is a
//     subset T ⊆ E that connects every vertex with the least possible total weight.
//   - Uses here: the cheapest network linking every venue, clustering by cutting
//     the heaviest tree edges, and lower bounds for tour-style problems.
//
// Algorithms Provided
//
//   - Prim[K](g, root) (*Tree[K], error)
//
//     Grows a single tree from root with a lazy min-heap of candidate vertices.
//     When g is disconnected, the tree covers only root's component and no error
//     is returned. Tree.EntryWeight records, for each vertex, the weight of the edge
//     that attached it (0 for the root).
//     Time O(E log V), space O(V + E).
//
//   - Kruskal[K](g) (*Forest[K], error)
//
//     Sorts all edges and merges components with union-find. Returns a minimum
//     spanning forest with one tree per component.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Compute[K](g, Options[K]) ([]core.Edge[K], float64, error)
//
//     Dispatches on the closed Method enum. Any other value yields ErrUnknownMethod.
//
// # Determinism
//
// Both algorithms break weight ties by enumeration order. Build the graph with
// core.WithOrder to get the same tree on every run.
//
// Errors
//
//   - ErrNilGraph:       nil graph.
//   - ErrVertexNotFound: Prim root absent; wraps core.ErrVertexNotFound.
//   - ErrUnknownMethod:  invalid Method in Compute or ParseMethod.
package prim_kruskal
