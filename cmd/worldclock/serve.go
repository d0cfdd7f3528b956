package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	worldclock "github.com/goliatone/go-worldclock"
	"github.com/goliatone/go-worldclock/components/timezones"
	clockpage "github.com/goliatone/go-worldclock/components/worldclock"
	"github.com/goliatone/go-worldclock/internal/config"
	"github.com/goliatone/go-worldclock/internal/logging"
	"github.com/goliatone/go-worldclock/internal/metrics"
	"github.com/goliatone/go-worldclock/pkg/clock"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the clock page, zone lookup and metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// newMux wires the clock page, zone lookup, assets, metrics and health
// routes. closeBoards stops the live clock boards.
func newMux(cfg config.Config, logger logging.Logger, m *metrics.Metrics) (mux *http.ServeMux, closeBoards func(), err error) {
	clocks, err := clockpage.New(
		clockpage.WithDefaultTimezone(cfg.DefaultTimezone),
		clockpage.WithAbbrevStyle(clock.AbbrevStyle(cfg.AbbrevStyle)),
		clockpage.WithRefreshInterval(cfg.RefreshInterval),
		clockpage.WithReloadSeconds(cfg.ReloadSeconds),
		clockpage.WithMaxSessions(cfg.MaxSessions),
		clockpage.WithTitle(cfg.Title),
		clockpage.WithHeaderHTML(cfg.HeaderHTML),
		clockpage.WithTheme(cfg.RendererTheme()),
		clockpage.WithLogger(logger.With("component", "worldclock")),
		clockpage.WithMetrics(m),
	)
	if err != nil {
		return nil, nil, err
	}

	mux = http.NewServeMux()
	if _, err := clocks.RegisterRoutes(mux, "/"); err != nil {
		clocks.Close()
		return nil, nil, err
	}
	if _, err := timezones.RegisterRoutes(mux, "/", timezones.WithFormatter(formatterFor(cfg))); err != nil {
		clocks.Close()
		return nil, nil, err
	}
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServerFS(worldclock.AssetsFS())))
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux, clocks.Close, nil
}

// serve runs the HTTP server until ctx is done, then shuts down within
// cfg.ShutdownGrace.
func serve(ctx context.Context, cfg config.Config, logger logging.Logger) error {
	mux, closeBoards, err := newMux(cfg, logger, metrics.New("worldclock"))
	if err != nil {
		return err
	}
	defer closeBoards()

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	logger.Info("listening", "addr", cfg.Addr, "default_timezone", cfg.DefaultTimezone, "refresh_interval", cfg.RefreshInterval)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()

	logger.Info("shutting down", "grace", cfg.ShutdownGrace)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", "error", err)
	}
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
