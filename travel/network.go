package travel

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/prim_kruskal"
)

// MinimumSalt returns the minimum spanning tree grown from root's venue:
// the least total road mileage that links every venue, i.e. the roads a
// league would have to keep salted in winter.
func MinimumSalt(g *core.Graph[string], root string, opts ...Option) (*prim_kruskal.Tree[string], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, root)
	}

	done := o.recorder.Track("prim")
	tree, err := prim_kruskal.Prim(g, root)
	done()
	if err != nil {
		return nil, err
	}

	o.logger.Debug("spanning tree built",
		zap.String(FieldTeam, root),
		zap.Int("venues", tree.Len()),
		zap.Float64(FieldMiles, tree.Total))

	return tree, nil
}
