// Package report renders travel results as plain text, JSON or YAML.
//
// Text output keeps the classic console layout:
//
//	Total travel distance for Los Angeles Lakers (away games): 4931.24 miles
//	  Los Angeles Lakers -> Boston Celtics: 2592.17 miles
//
// JSON and YAML documents wrap the payload in an Envelope carrying a run ID
// and a generation timestamp.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/prim_kruskal"
	"github.com/katalvlaran/travelgraph/travel"
)

// Sentinel errors for rendering.
var (
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrUnsupportedValue is returned when Encode is given a value it cannot render.
	ErrUnsupportedValue = errors.New("report: unsupported value")
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Envelope wraps structured output.
type Envelope struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Kind        string    `json:"kind" yaml:"kind"`
	Data        any       `json:"data" yaml:"data"`
}

// Tree is the serializable form of a spanning tree.
type Tree struct {
	Root  string        `json:"root" yaml:"root"`
	Total float64       `json:"total_miles" yaml:"total_miles"`
	Edges []travel.Trip `json:"edges" yaml:"edges"`
}

// NewTree converts a Prim tree into its serializable form.
func NewTree(t *prim_kruskal.Tree[string]) Tree {
	out := Tree{Root: t.Root, Total: t.Total, Edges: make([]travel.Trip, 0, len(t.Edges))}
	for _, e := range t.Edges {
		out.Edges = append(out.Edges, edgeTrip(e))
	}

	return out
}

func edgeTrip(e core.Edge[string]) travel.Trip {
	return travel.Trip{From: e.From, To: e.To, Miles: e.Weight}
}

// Encoder writes reports in one Format. Now and NewID default to the wall
// clock and random UUIDs; tests replace them.
type Encoder struct {
	Format Format
	Now    func() time.Time
	NewID  func() uuid.UUID
}

// Encode writes v to w in format using a default Encoder.
func Encode(w io.Writer, format Format, v any) error {
	return (&Encoder{Format: format}).Encode(w, v)
}

// Encode writes v. Supported values are *travel.Analysis, []travel.Standing,
// *travel.RouteResult and *prim_kruskal.Tree[string].
func (e *Encoder) Encode(w io.Writer, v any) error {
	kind, data, err := normalize(v)
	if err != nil {
		return err
	}

	switch e.Format {
	case FormatText, "":
		return writeText(w, data)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e.envelope(kind, data))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e.envelope(kind, data)); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, e.Format)
	}
}

func (e *Encoder) envelope(kind string, data any) Envelope {
	now, newID := time.Now, uuid.New
	if e.Now != nil {
		now = e.Now
	}
	if e.NewID != nil {
		newID = e.NewID
	}

	return Envelope{RunID: newID().String(), GeneratedAt: now().UTC(), Kind: kind, Data: data}
}

func normalize(v any) (string, any, error) {
	switch x := v.(type) {
	case *travel.Analysis:
		return "analysis", x, nil
	case []travel.Standing:
		return "ranking", x, nil
	case *travel.RouteResult:
		return "route", x, nil
	case *prim_kruskal.Tree[string]:
		return "tree", NewTree(x), nil
	case Tree:
		return "tree", x, nil
	default:
		return "", nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func writeText(w io.Writer, data any) error {
	switch x := data.(type) {
	case *travel.Analysis:
		return WriteAnalysis(w, x)
	case []travel.Standing:
		return WriteRanking(w, x)
	case *travel.RouteResult:
		return WriteRoute(w, x)
	case Tree:
		return writeTree(w, x)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, data)
	}
}
