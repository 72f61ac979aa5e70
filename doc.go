// Package travelgraph is an in-memory toolkit for weighted, undirected
// graphs and the travel analysis built on top of them.
//
// What is inside?
//
//	core/         — generic Graph[K]: vertices, weighted undirected edges, ordered iteration
//	bfs/          — fewest-hop traversal with depth, parent links and visit hooks
//	dijkstra/     — single-source shortest paths over non-negative weights
//	prim_kruskal/ — minimum spanning tree (Prim) and spanning forest (Kruskal)
//	builder/      — deterministic graph constructors (Complete, Path, RandomSparse)
//
// Travel analysis:
//
//	geo/       — coordinates and great-circle (haversine) distance
//	venue/     — team → arena tables, built-in NBA arenas, JSON/YAML files
//	schedule/  — CSV game schedules (Date, HomeTeam, AwayTeam)
//	travel/    — venue graph, routes, per-team away mileage, league ranking
//	report/    — text, JSON and YAML rendering
//	export/    — Graphviz DOT output
//	metrics/   — Prometheus traversal counters and textfile export
//	config/    — YAML configuration, zap logger setup, hot reload
//
// The travelgraph command (cmd/travelgraph) ties these together:
//
//	go install github.com/katalvlaran/travelgraph/cmd/travelgraph@latest
//	travelgraph rank --schedule games.csv
//
// Quick start with the library:
//
//	g := core.NewGraph(core.WithOrder[string](strings.Compare))
//	_ = g.AddEdge("A", "B", 100)
//	_ = g.AddEdge("B", "C", 200)
//	res, _ := dijkstra.Dijkstra(g, "A")
//	path, _ := res.PathTo("C") // [A B C], 300
package travelgraph
