package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/travelgraph/config"
	"github.com/katalvlaran/travelgraph/export"
	"github.com/katalvlaran/travelgraph/travel"
)

var errNoTeam = errors.New("no team: pass one as an argument or set team in the config file")

func (a *app) routeCmd() *cobra.Command {
	var (
		alg   travel.Algorithm
		avoid []string
	)
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "find the shortest or fewest-leg route between two arenas",
		Example: `  travelgraph route "Boston Celtics" "Miami Heat"
  travelgraph route "Boston Celtics" "Miami Heat" --algorithm fewest --avoid "Atlanta Hawks"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algorithm") {
				alg = a.cfg.Algorithm
			}
			g, err := a.graph(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			res, err := travel.Route(g, args[0], args[1], alg, a.travelOptions(a.cfg, travel.WithAvoid(avoid...))...)
			if err != nil {
				return err
			}
			enc, err := a.encoder(a.cfg)
			if err != nil {
				return err
			}

			return enc.Encode(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Var(&alg, "algorithm", "route algorithm: shortest (miles) or fewest (legs)")
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "arenas the route must not pass through")

	return cmd
}

func (a *app) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [TEAM]",
		Short: "total the away-game travel of one team",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team := a.cfg.Team
			if len(args) == 1 {
				team = args[0]
			}
			if team == "" {
				return errNoTeam
			}
			g, err := a.graph(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			games, err := a.games(a.cfg)
			if err != nil {
				return err
			}
			res, err := travel.AnalyzeTeam(g, team, games, a.travelOptions(a.cfg)...)
			if err != nil {
				return err
			}
			enc, err := a.encoder(a.cfg)
			if err != nil {
				return err
			}

			return enc.Encode(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) rankCmd() *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "rank every team by total away-game travel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("concurrency") {
				if concurrency < 0 {
					return fmt.Errorf("--concurrency must be >= 0, got %d", concurrency)
				}
				a.cfg.Concurrency = concurrency
			}

			return a.rank(cmd.Context(), cmd.OutOrStdout(), a.cfg)
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel team analyses (0: GOMAXPROCS)")

	return cmd
}

func (a *app) rank(ctx context.Context, w io.Writer, cfg *config.Config) error {
	g, err := a.graph(ctx, cfg)
	if err != nil {
		return err
	}
	games, err := a.games(cfg)
	if err != nil {
		return err
	}
	standings, err := travel.Rank(ctx, g, games, a.travelOptions(cfg)...)
	if err != nil {
		return err
	}
	enc, err := a.encoder(cfg)
	if err != nil {
		return err
	}

	return enc.Encode(w, standings)
}

func (a *app) mstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mst [ROOT]",
		Short: "print the minimum spanning network of arenas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			tree, err := travel.MinimumSalt(g, a.rootTeam(args, g.Vertices()), a.travelOptions(a.cfg)...)
			if err != nil {
				return err
			}
			enc, err := a.encoder(a.cfg)
			if err != nil {
				return err
			}

			return enc.Encode(cmd.OutOrStdout(), tree)
		},
	}
}

func (a *app) dotCmd() *cobra.Command {
	var tree bool
	cmd := &cobra.Command{
		Use:   "dot [ROOT]",
		Short: "write the venue graph, or its spanning tree, as Graphviz DOT",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			if !tree {
				return export.DOT(cmd.OutOrStdout(), g)
			}
			t, err := travel.MinimumSalt(g, a.rootTeam(args, g.Vertices()), a.travelOptions(a.cfg)...)
			if err != nil {
				return err
			}

			return export.TreeDOT(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "write only the minimum spanning tree")

	return cmd
}

// rootTeam picks the argument, then the configured team, then the first
// vertex in name order.
func (a *app) rootTeam(args, vertices []string) string {
	switch {
	case len(args) == 1:
		return args[0]
	case a.cfg.Team != "":
		return a.cfg.Team
	case len(vertices) > 0:
		return vertices[0]
	default:
		return ""
	}
}
