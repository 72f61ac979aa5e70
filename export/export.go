// Package export renders venue graphs and spanning trees as Graphviz DOT.
//
// Graphs are first converted to an undirected, weighted
// github.com/dominikbraun/graph value. Edge weights there are integers, so
// miles are rounded; the exact value is kept in the edge "label" attribute.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/prim_kruskal"
)

// ErrNilGraph is returned when a nil graph or tree is exported.
var ErrNilGraph = errors.New("export: graph is nil")

// Convert copies g into an undirected, weighted graph.Graph keyed by vertex
// name. Vertices and edges are inserted in g's enumeration order.
func Convert(g *core.Graph[string]) (graph.Graph[string, string], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := graph.New(graph.StringHash, graph.Weighted())
	for _, v := range g.Vertices() {
		if err := out.AddVertex(v); err != nil {
			return nil, fmt.Errorf("export: add vertex %q: %w", v, err)
		}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if err := addEdge(out, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// DOT writes g as a Graphviz "strict graph".
func DOT(w io.Writer, g *core.Graph[string]) error {
	out, err := Convert(g)
	if err != nil {
		return err
	}

	return render(w, out)
}

// TreeDOT writes the edges of a spanning tree as a Graphviz graph. The root
// is emitted first even when the tree has no edges.
func TreeDOT(w io.Writer, tree *prim_kruskal.Tree[string]) error {
	if tree == nil {
		return ErrNilGraph
	}
	out := graph.New(graph.StringHash, graph.Weighted())
	if err := out.AddVertex(tree.Root); err != nil {
		return fmt.Errorf("export: add vertex %q: %w", tree.Root, err)
	}
	for _, e := range tree.Edges {
		if err := out.AddVertex(e.To); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return fmt.Errorf("export: add vertex %q: %w", e.To, err)
		}
		if err := addEdge(out, e); err != nil {
			return err
		}
	}

	return render(w, out)
}

func addEdge(out graph.Graph[string, string], e core.Edge[string]) error {
	err := out.AddEdge(e.From, e.To,
		graph.EdgeWeight(roundWeight(e.Weight)),
		graph.EdgeAttribute("label", fmt.Sprintf("%.2f", e.Weight)),
	)
	if err != nil {
		return fmt.Errorf("export: add edge %q–%q: %w", e.From, e.To, err)
	}

	return nil
}

func render(w io.Writer, g graph.Graph[string, string]) error {
	if err := draw.DOT(g, w); err != nil {
		return fmt.Errorf("export: render dot: %w", err)
	}

	return nil
}

// roundWeight maps miles to the integer weight dominikbraun/graph stores.
// +Inf saturates at math.MaxInt.
func roundWeight(w float64) int {
	if w >= float64(math.MaxInt) {
		return math.MaxInt
	}

	return int(math.Round(w))
}
