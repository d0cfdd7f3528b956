package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/clock"
	"github.com/goliatone/go-worldclock/pkg/renderers/text"
)

func newWatchCmd(flags *globalFlags) *cobra.Command {
	var (
		cities   string
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the clock row and reprint it on every refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = cfg.RefreshInterval
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			zones := clock.ParseCitiesWithDefault(cities, cfg.DefaultTimezone)
			b := board.New(zones, board.WithFormatter(formatterFor(cfg)))
			b.EnsureMounted(time.Now())

			rows := text.New(0)
			out := cmd.OutOrStdout()
			var mu sync.Mutex
			write := func() {
				mu.Lock()
				defer mu.Unlock()
				row, err := rows.Render(ctx, b, renderOptions(cfg, time.Now()))
				if err != nil {
					logger.Warn("watch render failed", "error", err)
					return
				}
				_, _ = out.Write(append(row, '\n'))
			}

			controller := board.NewController(b,
				board.WithInterval(interval),
				board.WithRefreshHook(func(updated int, elapsed time.Duration) {
					logger.Debug("clock board refreshed", "columns", updated, "elapsed", elapsed)
					write()
				}),
			)
			if err := controller.Start(ctx); err != nil {
				return err
			}
			write()

			<-controller.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&cities, "cities", "", "comma separated IANA zones")
	cmd.Flags().DurationVar(&interval, "interval", 0, "refresh interval (defaults to config refresh_interval)")
	return cmd
}
