package travel

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/travelgraph/bfs"
	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/dijkstra"
)

// RouteResult is a planned route between two teams.
type RouteResult struct {
	From      string    `json:"from" yaml:"from"`
	To        string    `json:"to" yaml:"to"`
	Algorithm Algorithm `json:"algorithm" yaml:"algorithm"`
	Path      []string  `json:"path" yaml:"path"`
	Miles     float64   `json:"miles" yaml:"miles"`
}

// Legs returns the number of hops along the route.
func (r *RouteResult) Legs() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Route plans a path from one team's venue to another's.
//
// Shortest minimizes miles; Fewest minimizes legs and then reports the miles
// of the chosen path. WithAvoid removes venues from a copy of g first; g is
// never mutated.
func Route(g *core.Graph[string], from, to string, alg Algorithm, opts ...Option) (*RouteResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)
	for _, team := range []string{from, to} {
		if !g.HasVertex(team) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
		}
		if slices.Contains(o.avoid, team) {
			return nil, fmt.Errorf("%w: %q", ErrAvoidEndpoint, team)
		}
	}

	if len(o.avoid) > 0 {
		g = g.Clone()
		for _, team := range o.avoid {
			g.RemoveVertex(team)
		}
	}

	var (
		path []string
		err  error
	)
	done := o.recorder.Track(alg.String())
	switch alg {
	case Shortest:
		path, err = shortestPath(g, from, to)
	case Fewest:
		path, err = fewestPath(g, from, to)
	default:
		err = fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	done()
	if err != nil {
		return nil, err
	}

	res := &RouteResult{From: from, To: to, Algorithm: alg, Path: path, Miles: pathMiles(g, path)}
	o.logger.Debug("route planned",
		zap.String(FieldTeam, from),
		zap.String("destination", to),
		zap.Stringer(FieldAlgorithm, alg),
		zap.Float64(FieldMiles, res.Miles),
		zap.Int("legs", res.Legs()))

	return res, nil
}

func shortestPath(g *core.Graph[string], from, to string) ([]string, error) {
	res, err := dijkstra.Dijkstra(g, from)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %s to %s: %w", ErrUnreachable, from, to, err)
	}

	return path, nil
}

func fewestPath(g *core.Graph[string], from, to string) ([]string, error) {
	res, err := bfs.BFS(g, from)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %s to %s: %w", ErrUnreachable, from, to, err)
	}

	return path, nil
}

// pathMiles sums the edge weights along path.
func pathMiles(g *core.Graph[string], path []string) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		w, _ := g.Weight(path[i-1], path[i])
		total += w
	}

	return total
}
