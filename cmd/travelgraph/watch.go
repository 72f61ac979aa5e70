package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/travelgraph/config"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "rank teams, then re-rank whenever the config, schedule or venue file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			loader, err := config.NewLoader(a.configPath, a.logger)
			if err != nil {
				return err
			}
			changed := newPending()
			loader.OnChange(func(*config.Config) { changed.notify() })

			if err := a.rank(ctx, out, a.cfg); err != nil {
				return err
			}
			var extra []string
			for _, p := range []string{a.cfg.Schedule, a.cfg.Venues} {
				if p != "" {
					extra = append(extra, p)
				}
			}
			stop, err := loader.Watch(extra...)
			if err != nil {
				return err
			}
			defer stop()
			a.logger.Info("watching for changes", zap.Strings("files", extra), zap.String("config", a.configPath))

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-changed.C:
					cfg, err := a.resolve(loader.Config())
					if err != nil {
						a.logger.Warn("ignoring invalid configuration", zap.Error(err))
						continue
					}
					if err := a.rank(ctx, out, cfg); err != nil {
						a.logger.Warn("re-rank failed", zap.Error(err))
						continue
					}
					a.cfg = cfg
				}
			}
		},
	}
}

// pending coalesces change notifications. Any number of notify calls before
// the receiver reads C leave a single wakeup; the receiver then reads the
// latest state itself.
type pending struct {
	C chan struct{}
}

func newPending() *pending {
	return &pending{C: make(chan struct{}, 1)}
}

func (p *pending) notify() {
	select {
	case p.C <- struct{}{}:
	default:
	}
}
