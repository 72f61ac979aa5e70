// Package schedule reads a game schedule from CSV with the header
// Date,HomeTeam,AwayTeam. Extra columns are ignored and Date is optional.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Column names recognized in the header row.
const (
	ColumnDate = "Date"
	ColumnHome = "HomeTeam"
	ColumnAway = "AwayTeam"
)

// Sentinel errors for schedule parsing.
var (
	// ErrMissingColumn is returned when HomeTeam or AwayTeam is absent from the header.
	ErrMissingColumn = errors.New("schedule: missing required column")

	// ErrEmptyTeam is returned for a row with a blank home or away team.
	ErrEmptyTeam = errors.New("schedule: empty team name")
)

// Game is one scheduled game.
type Game struct {
	Date string `json:"date,omitempty" yaml:"date,omitempty"`
	Home string `json:"home" yaml:"home"`
	Away string `json:"away" yaml:"away"`
}

// Read parses every row of r. Cells are trimmed of surrounding spaces.
// An input with only a header yields an empty, non-nil slice.
func Read(r io.Reader) ([]Game, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("schedule: read header: %w", err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	home, okHome := idx[ColumnHome]
	away, okAway := idx[ColumnAway]
	if !okHome || !okAway {
		return nil, fmt.Errorf("%w: need %s and %s, got %v", ErrMissingColumn, ColumnHome, ColumnAway, header)
	}
	date, okDate := idx[ColumnDate]

	games := []Game{}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("schedule: line %d: %w", line, err)
		}
		g := Game{
			Home: cell(rec, home),
			Away: cell(rec, away),
		}
		if okDate {
			g.Date = cell(rec, date)
		}
		if g.Home == "" || g.Away == "" {
			return nil, fmt.Errorf("%w: line %d", ErrEmptyTeam, line)
		}
		games = append(games, g)
	}

	return games, nil
}

// Load opens path and reads it with Read.
func Load(path string) ([]Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	defer f.Close()

	games, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return games, nil
}

// AwayGames returns the games in which team travels, in schedule order.
func AwayGames(games []Game, team string) []Game {
	var out []Game
	for _, g := range games {
		if g.Away == team {
			out = append(out, g)
		}
	}

	return out
}

// Teams returns every distinct team named in games, in first-seen order.
func Teams(games []Game) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, g := range games {
		for _, t := range [2]string{g.Home, g.Away} {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}

	return out
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[i])
}
