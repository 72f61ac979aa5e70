package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/travelgraph/config"
	"github.com/katalvlaran/travelgraph/core"
	"github.com/katalvlaran/travelgraph/metrics"
	"github.com/katalvlaran/travelgraph/report"
	"github.com/katalvlaran/travelgraph/schedule"
	"github.com/katalvlaran/travelgraph/travel"
	"github.com/katalvlaran/travelgraph/venue"
)

var errNoSchedule = errors.New("no schedule file: set --schedule or schedule in the config file")

// app carries flag values and the per-run dependencies shared by every
// subcommand.
type app struct {
	configPath      string
	venues          string
	schedule        string
	logLevel        string
	logFormat       string
	output          string
	metricsTextfile string

	cfg      *config.Config
	logger   *zap.Logger
	recorder *metrics.Recorder
	// root is consulted for Changed flags when a reload re-resolves cfg.
	root *cobra.Command
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "travelgraph",
		Short:             "travelgraph measures travel between NBA arenas",
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			defer a.logger.Sync() //nolint:errcheck
			return a.recorder.WriteTextfile(a.cfg.MetricsTextfile)
		},
	}
	a.root = root

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&a.venues, "venues", "", "JSON or YAML venue table (default: built-in NBA arenas)")
	pf.StringVar(&a.schedule, "schedule", "", "CSV schedule with Date, HomeTeam and AwayTeam columns")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")
	pf.StringVarP(&a.output, "output", "o", "", "report format: text, json or yaml")
	pf.StringVar(&a.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run")

	root.AddCommand(
		a.routeCmd(),
		a.analyzeCmd(),
		a.rankCmd(),
		a.mstCmd(),
		a.dotCmd(),
		a.watchCmd(),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the
// logger and metrics recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.cfg, err = a.resolve(cfg); err != nil {
		return err
	}
	if a.logger, err = config.NewLogger(a.cfg.Log); err != nil {
		return err
	}
	a.recorder = metrics.New()
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("output", a.cfg.Output),
		zap.String("algorithm", a.cfg.Algorithm.String()))

	return nil
}

// resolve returns a copy of cfg with explicitly set flags applied.
func (a *app) resolve(cfg *config.Config) (*config.Config, error) {
	out := *cfg
	flags := a.root.PersistentFlags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("venues", &out.Venues, a.venues)
	override("schedule", &out.Schedule, a.schedule)
	override("log-level", &out.Log.Level, a.logLevel)
	override("log-format", &out.Log.Format, a.logFormat)
	override("output", &out.Output, a.output)
	override("metrics-textfile", &out.MetricsTextfile, a.metricsTextfile)
	out.Normalize()
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *app) travelOptions(cfg *config.Config, extra ...travel.Option) []travel.Option {
	opts := []travel.Option{
		travel.WithLogger(a.logger),
		travel.WithRecorder(a.recorder),
		travel.WithConcurrency(cfg.Concurrency),
	}

	return append(opts, extra...)
}

// graph loads the venue table, falling back to the built-in arenas when the
// configured file is unusable, and builds the complete venue graph.
func (a *app) graph(ctx context.Context, cfg *config.Config) (*core.Graph[string], error) {
	var provider venue.Provider = venue.Default()
	if cfg.Venues != "" {
		provider = &venue.FileProvider{Path: cfg.Venues, Fallback: venue.Default(), Logger: a.logger}
	}
	table, err := provider.Venues(ctx)
	if err != nil {
		return nil, err
	}

	return travel.BuildGraph(table, a.travelOptions(cfg)...)
}

func (a *app) games(cfg *config.Config) ([]schedule.Game, error) {
	if cfg.Schedule == "" {
		return nil, errNoSchedule
	}

	return schedule.Load(cfg.Schedule)
}

func (a *app) encoder(cfg *config.Config) (*report.Encoder, error) {
	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("--output: %w", err)
	}

	return &report.Encoder{Format: format}, nil
}
