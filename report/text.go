package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/travelgraph/prim_kruskal"
	"github.com/katalvlaran/travelgraph/travel"
)

// WriteAnalysis prints a team's total away mileage followed by one line per trip.
func WriteAnalysis(w io.Writer, a *travel.Analysis) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Total travel distance for %s (away games): %.2f miles\n", a.Team, a.Total)
	for _, t := range a.Trips {
		fmt.Fprintf(bw, "  %s -> %s: %.2f miles\n", t.From, t.To, t.Miles)
	}

	return bw.Flush()
}

// WriteRanking prints one numbered line per team, farthest traveler first.
func WriteRanking(w io.Writer, standings []travel.Standing) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Rank teams by total away-game travel distance:")
	for i, s := range standings {
		rank := s.Rank
		if rank == 0 {
			rank = i + 1
		}
		fmt.Fprintf(bw, "%d. %s: %.2f miles\n", rank, s.Team, s.Total)
	}

	return bw.Flush()
}

// WriteRoute prints the path and its mileage.
func WriteRoute(w io.Writer, r *travel.RouteResult) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Route from %s to %s (%s): %s\n", r.From, r.To, r.Algorithm, strings.Join(r.Path, " -> "))
	fmt.Fprintf(bw, "Total: %.2f miles over %d legs\n", r.Miles, r.Legs())

	return bw.Flush()
}

// WriteTree prints the spanning tree total and its edges in selection order.
func WriteTree(w io.Writer, t *prim_kruskal.Tree[string]) error {
	return writeTree(w, NewTree(t))
}

func writeTree(w io.Writer, t Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Minimum spanning network from %s: %.2f miles\n", t.Root, t.Total)
	for _, e := range t.Edges {
		fmt.Fprintf(bw, "  %s -> %s: %.2f miles\n", e.From, e.To, e.Miles)
	}

	return bw.Flush()
}
