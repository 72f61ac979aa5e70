// Package prim_kruskal defines result types, the algorithm selector and
// sentinel errors for minimum spanning tree computation.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/travelgraph/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrVertexNotFound indicates that the Prim root is absent from the graph.
// It wraps core.ErrVertexNotFound.
var ErrVertexNotFound = fmt.Errorf("prim_kruskal: root vertex not found: %w", core.ErrVertexNotFound)

// ErrUnknownMethod indicates a Method value outside the supported set.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Method selects the MST algorithm run by Compute.
type Method int

const (
	// MethodPrim grows a tree from a root using a min-heap.
	MethodPrim Method = iota
	// MethodKruskal sorts all edges and merges components with union-find.
	MethodKruskal
)

// String returns the lowercase method name.
func (m Method) String() string {
	switch m {
	case MethodPrim:
		return "prim"
	case MethodKruskal:
		return "kruskal"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "prim" or "kruskal" to its Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "prim":
		return MethodPrim, nil
	case "kruskal":
		return MethodKruskal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Options configures Compute.
//
//	Method – MethodPrim or MethodKruskal.
//	Root   – start vertex for Prim; ignored by Kruskal.
type Options[K comparable] struct {
	Method Method
	Root   K
}

// Tree is the spanning tree of the component reachable from Root.
//
//   - Edges are in selection order; From is the tree-side vertex and To the
//     vertex it attached.
//   - EntryWeight maps each vertex in the tree to the weight of the edge that
//     attached it. The root maps to 0.
//   - Total is the sum of all tree edge weights.
type Tree[K comparable] struct {
	Root        K
	Edges       []core.Edge[K]
	EntryWeight map[K]float64
	Total       float64
}

// Contains reports whether v belongs to the tree.
func (t *Tree[K]) Contains(v K) bool {
	_, ok := t.EntryWeight[v]

	return ok
}

// Len returns the number of vertices spanned by the tree.
func (t *Tree[K]) Len() int { return len(t.EntryWeight) }

// Weight returns the weight of tree edge u–v in either orientation.
func (t *Tree[K]) Weight(u, v K) (float64, bool) {
	for _, e := range t.Edges {
		if (e.From == u && e.To == v) || (e.From == v && e.To == u) {
			return e.Weight, true
		}
	}

	return 0, false
}

// Forest is a minimum spanning forest: one tree per connected component.
type Forest[K comparable] struct {
	Edges      []core.Edge[K]
	Total      float64
	Components int
}

// Spanning reports whether the forest is a single tree.
func (f *Forest[K]) Spanning() bool { return f.Components <= 1 }

// Compute selects and runs the MST algorithm based on opts.Method and
// returns the selected edges with their total weight.
//
//	– MethodPrim:    Prim(g, opts.Root); the reachable component only.
//	– MethodKruskal: Kruskal(g); a spanning forest of the whole graph.
//	– otherwise:     ErrUnknownMethod.
func Compute[K comparable](g *core.Graph[K], opts Options[K]) ([]core.Edge[K], float64, error) {
	switch opts.Method {
	case MethodPrim:
		t, err := Prim(g, opts.Root)
		if err != nil {
			return nil, 0, err
		}
		return t.Edges, t.Total, nil
	case MethodKruskal:
		f, err := Kruskal(g)
		if err != nil {
			return nil, 0, err
		}
		return f.Edges, f.Total, nil
	default:
		return nil, 0, fmt.Errorf("%w: %v", ErrUnknownMethod, opts.Method)
	}
}
