// Package bfs provides breadth-first search over a core.Graph, answering the
// "fewest hops" question: how many edges separate each vertex from a source,
// and through which predecessor.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a source vertex.
//     Edge weights are ignored.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from source (reached vertices only)
//   - Parent: map from vertex → its predecessor in the BFS tree;
//     the source has no entry
//   - Optional OnVisit hook (may abort with an error), neighbor filter,
//     and MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	BFS enqueues neighbors in core.Graph.Neighbors order. For graphs built
//	with core.WithOrder the visit sequence and parent links are fully
//	reproducible; otherwise ties inside a layer follow map order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(g, "Boston Celtics")
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or hook error
//	}
//	path, err := res.PathTo("Utah Jazz")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the source does not exist (wraps core.ErrVertexNotFound).
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for a vertex outside the tree.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
