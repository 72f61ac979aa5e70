package travel

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/travelgraph/builder"
	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/geo"
	"github.com/katalvlaran/travelgraph/venue"
)

// BuildGraph joins every pair of venues in table with an edge weighted by
// the great-circle distance between them, in miles. Enumeration is ordered
// by team name, so every traversal over the result is reproducible.
func BuildGraph(table venue.Table, opts ...Option) (*core.Graph[string], error) {
	o := newOptions(opts...)
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("travel: build graph: %w", err)
	}

	miles := func(u, v string) (float64, error) {
		d, err := geo.Distance(table[u].Coordinate(), table[v].Coordinate())
		if err != nil {
			return 0, fmt.Errorf("%s–%s: %w", u, v, err)
		}

		return d, nil
	}
	teams := table.Teams()
	g, err := builder.BuildGraph(
		nil,
		[]core.GraphOption[string]{
			core.WithOrder[string](strings.Compare),
			core.WithCapacity[string](len(teams)),
		},
		builder.Complete(teams, miles),
	)
	if err != nil {
		return nil, fmt.Errorf("travel: build graph: %w", err)
	}

	o.recorder.SetGraphSize(g.VertexCount(), g.EdgeCount())
	o.logger.Debug("venue graph built",
		zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	return g, nil
}
