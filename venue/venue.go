// Package venue holds the coordinate table that supplies the travel graph's
// vertices, and the providers that load it.
package venue

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/travelgraph/geo"
)

// Sentinel errors for venue tables.
var (
	// ErrEmptyTable is returned when a source yields no venues.
	ErrEmptyTable = errors.New("venue: table is empty")

	// ErrInvalidVenue is returned when a venue fails validation.
	ErrInvalidVenue = errors.New("venue: invalid venue")
)

var validate = validator.New()

// Venue is one team's home arena.
type Venue struct {
	Team string  `json:"-" yaml:"-"`
	City string  `json:"city" yaml:"city" validate:"required"`
	Lat  float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `json:"lon" yaml:"lon" validate:"gte=-180,lte=180"`
}

// Coordinate returns the venue's position.
func (v Venue) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: v.Lat, Lon: v.Lon}
}

// Table maps a team name to its venue.
type Table map[string]Venue

// Teams returns the team names in ascending order.
func (t Table) Teams() []string {
	return slices.Sorted(maps.Keys(t))
}

// Coordinate returns the position of team's venue.
func (t Table) Coordinate(team string) (geo.Coordinate, bool) {
	v, ok := t[team]
	if !ok {
		return geo.Coordinate{}, false
	}

	return v.Coordinate(), true
}

// Clone returns an independent copy of t.
func (t Table) Clone() Table {
	return maps.Clone(t)
}

// Validate checks every venue and fills in Team from the map key.
// The first failure is returned, in team order.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	for _, team := range t.Teams() {
		v := t[team]
		if err := validate.Struct(v); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidVenue, team, err)
		}
		if v.Team != team {
			v.Team = team
			t[team] = v
		}
	}

	return nil
}

// Venues lets a Table act as a Provider of itself. It returns a copy, so
// callers may mutate the result freely.
func (t Table) Venues(ctx context.Context) (Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(t) == 0 {
		return nil, ErrEmptyTable
	}

	return t.Clone(), nil
}

// Provider supplies a venue table.
type Provider interface {
	Venues(ctx context.Context) (Table, error)
}
