// Package prim_kruskal provides an implementation of Kruskal’s minimum spanning forest algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/travelgraph/core"
)

// Kruskal computes a minimum spanning forest of g using a disjoint-set
// (union-find) structure with path compression and union by rank.
//
// Unlike Prim it needs no root and covers every component; Forest.Components
// counts them, so Forest.Spanning reports whether g is connected.
//
// Steps:
//  1. Validate: graph != nil (ErrNilGraph).
//  2. Collect all edges via g.Edges(), skipping self-loops.
//  3. Stable-sort edges by ascending weight; g.Edges() order breaks ties,
//     which is deterministic under core.WithOrder.
//  4. Walk the sorted edges, keeping each edge whose endpoints lie in
//     different sets, and merge those sets.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal[K comparable](g *core.Graph[K]) (*Forest[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	vertices := g.Vertices()
	f := &Forest[K]{Components: len(vertices)}
	if len(vertices) < 2 {
		return f, nil
	}

	all := g.Edges()
	edges := make([]core.Edge[K], 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	ds := newDisjointSet(vertices)
	f.Edges = make([]core.Edge[K], 0, len(vertices)-1)
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		f.Edges = append(f.Edges, e)
		f.Total += e.Weight
		f.Components--
		if f.Components == 1 {
			break
		}
	}

	return f, nil
}

// disjointSet is a union-find over vertex IDs.
type disjointSet[K comparable] struct {
	parent map[K]K
	rank   map[K]int
}

func newDisjointSet[K comparable](vertices []K) *disjointSet[K] {
	ds := &disjointSet[K]{
		parent: make(map[K]K, len(vertices)),
		rank:   make(map[K]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v] = v
	}

	return ds
}

// find returns the set root of u, compressing the path (path halving).
func (ds *disjointSet[K]) find(u K) K {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v by rank.
// It reports false when they were already in the same set.
func (ds *disjointSet[K]) union(u, v K) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}

	return true
}
