// Command travelgraph plans routes between NBA arenas and measures how far
// each team travels for its away games.
//
//	travelgraph route "Boston Celtics" "Miami Heat" --algorithm fewest
//	travelgraph analyze "Los Angeles Lakers" --schedule games.csv
//	travelgraph rank --schedule games.csv --output json
//	travelgraph mst "Denver Nuggets"
//	travelgraph dot --tree "Denver Nuggets" | dot -Tsvg > network.svg
//	travelgraph watch --config travelgraph.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
