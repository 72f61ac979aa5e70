package travel

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/schedule"
)

// Standing is one team's place in the travel ranking.
type Standing struct {
	Rank  int     `json:"rank" yaml:"rank"`
	Team  string  `json:"team" yaml:"team"`
	Trips int     `json:"trips" yaml:"trips"`
	Total float64 `json:"total_miles" yaml:"total_miles"`
}

// Rank analyzes every team in g and orders them by away-game miles,
// farthest first; equal totals are ordered by team name.
//
// Teams are analyzed concurrently, at most WithConcurrency at a time. The
// graph is only read, so sharing it between workers is safe as long as the
// caller does not mutate it meanwhile. The first error cancels the rest.
//
// Every team named in games must be a vertex of g; otherwise Rank returns
// ErrUnknownTeam before any analysis runs.
func Rank(ctx context.Context, g *core.Graph[string], games []schedule.Game, opts ...Option) ([]Standing, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)

	for _, team := range schedule.Teams(games) {
		if !g.HasVertex(team) {
			return nil, fmt.Errorf("%w: %q (named in schedule)", ErrUnknownTeam, team)
		}
	}

	teams := g.Vertices()
	out := make([]Standing, len(teams))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.concurrency)
	for i, team := range teams {
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := analyze(g, team, games, o)
			if err != nil {
				return err
			}
			out[i] = Standing{Team: team, Trips: len(a.Trips), Total: a.Total}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Team, b.Team)
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	o.logger.Info("teams ranked", zap.Int("teams", len(out)), zap.Int("games", len(games)))

	return out, nil
}
