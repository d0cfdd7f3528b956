package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	worldclock "github.com/goliatone/go-worldclock"
	"github.com/goliatone/go-worldclock/internal/config"
	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/clock"
	"github.com/goliatone/go-worldclock/pkg/render"
)

type printFlags struct {
	cities string
	format string
	at     string
}

func newPrintCmd(flags *globalFlags) *cobra.Command {
	pf := &printFlags{}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the clock row once",
		Example: `  worldclock print --cities Europe/London,Asia/Tokyo
  worldclock print --cities America/New_York --format json --at 2024-07-01T12:05:00Z`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			now := time.Now()
			if pf.at != "" {
				now, err = time.Parse(time.RFC3339, pf.at)
				if err != nil {
					return fmt.Errorf("print: --at: %w", err)
				}
			}

			registry, err := worldclock.NewRegistry()
			if err != nil {
				return err
			}
			renderer, err := registry.Resolve(pf.format)
			if err != nil {
				return fmt.Errorf("print: %w (available: %s)", err, strings.Join(registry.List(), ", "))
			}

			zones := clock.ParseCitiesWithDefault(pf.cities, cfg.DefaultTimezone)
			b := board.New(zones, board.WithFormatter(formatterFor(cfg)))
			out, err := renderer.Render(cmdContext(cmd), b, renderOptions(cfg, now))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&pf.cities, "cities", "", "comma separated IANA zones")
	cmd.Flags().StringVar(&pf.format, "format", "text", "output format: text, json or html")
	cmd.Flags().StringVar(&pf.at, "at", "", "RFC3339 instant to render instead of now")
	return cmd
}

func renderOptions(cfg config.Config, now time.Time) render.RenderOptions {
	return render.RenderOptions{
		Title:         cfg.Title,
		HeaderHTML:    cfg.HeaderHTML,
		ReloadSeconds: cfg.ReloadSeconds,
		Theme:         cfg.RendererTheme(),
		Now:           now,
	}
}
