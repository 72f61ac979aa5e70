// Package travel answers travel questions over a venue graph: routes between
// two teams, the distance a team covers on its away games, a league-wide
// ranking, and the minimum network linking all venues.
package travel

import (
	"errors"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/travelgraph/metrics"
)

// Sentinel errors for travel services.
var (
	// ErrUnknownTeam is returned when a team is not a vertex of the graph.
	ErrUnknownTeam = errors.New("travel: unknown team")

	// ErrUnreachable is returned when no route joins two teams.
	ErrUnreachable = errors.New("travel: no route between teams")

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
	ErrUnknownAlgorithm = errors.New("travel: unknown algorithm")

	// ErrAvoidEndpoint is returned when a route is asked to avoid its own endpoint.
	ErrAvoidEndpoint = errors.New("travel: cannot avoid a route endpoint")

	// ErrNilGraph is returned when a nil graph is supplied.
	ErrNilGraph = errors.New("travel: graph is nil")
)

// Structured log field keys.
const (
	FieldTeam      = "team"
	FieldAlgorithm = "algorithm"
	FieldMiles     = "miles"
)

// Option configures the travel services.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	recorder    *metrics.Recorder
	concurrency int
	avoid       []string
}

func newOptions(opts ...Option) options {
	o := options{
		logger:      zap.NewNop(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder instruments traversals on r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithConcurrency bounds the number of teams Rank analyzes at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithAvoid makes Route plan around the given teams' venues.
func WithAvoid(teams ...string) Option {
	return func(o *options) { o.avoid = append(o.avoid, teams...) }
}
