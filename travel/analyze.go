package travel

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/dijkstra"
	"github.com/katalvlaran/travelgraph/schedule"
)

// Trip is one away game: the team travels from its venue to the host's.
type Trip struct {
	From  string  `json:"from" yaml:"from"`
	To    string  `json:"to" yaml:"to"`
	Date  string  `json:"date,omitempty" yaml:"date,omitempty"`
	Miles float64 `json:"miles" yaml:"miles"`
}

// Analysis is the away-game travel of one team.
type Analysis struct {
	Team  string  `json:"team" yaml:"team"`
	Trips []Trip  `json:"trips" yaml:"trips"`
	Total float64 `json:"total_miles" yaml:"total_miles"`
}

// AnalyzeTeam measures every away game of team in games. Each trip's miles
// are the shortest-path distance from team's venue to the host venue, taken
// from a single Dijkstra run. Games the team does not travel to are ignored.
func AnalyzeTeam(g *core.Graph[string], team string, games []schedule.Game, opts ...Option) (*Analysis, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := newOptions(opts...)

	return analyze(g, team, games, o)
}

func analyze(g *core.Graph[string], team string, games []schedule.Game, o options) (*Analysis, error) {
	if !g.HasVertex(team) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}

	done := o.recorder.Track("dijkstra")
	sp, err := dijkstra.Dijkstra(g, team)
	done()
	if err != nil {
		return nil, err
	}

	a := &Analysis{Team: team, Trips: []Trip{}}
	for _, game := range schedule.AwayGames(games, team) {
		if !g.HasVertex(game.Home) {
			return nil, fmt.Errorf("%w: %q (host of %s away game on %s)", ErrUnknownTeam, game.Home, team, game.Date)
		}
		miles := sp.Distance(game.Home)
		if math.IsInf(miles, 1) {
			return nil, fmt.Errorf("%w: %s to %s", ErrUnreachable, team, game.Home)
		}
		a.Trips = append(a.Trips, Trip{From: team, To: game.Home, Date: game.Date, Miles: miles})
		a.Total += miles
	}

	o.logger.Debug("team analyzed",
		zap.String(FieldTeam, team),
		zap.Int("trips", len(a.Trips)),
		zap.Float64(FieldMiles, a.Total))

	return a, nil
}
