package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-worldclock/internal/config"
	"github.com/goliatone/go-worldclock/internal/logging"
	"github.com/goliatone/go-worldclock/pkg/clock"
)

type globalFlags struct {
	configPath string
	envFiles   []string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Live clocks for a list of timezones",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().StringSliceVar(&flags.envFiles, "env-file", []string{".env"}, "dotenv files loaded before the environment")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(flags),
		newPrintCmd(flags),
		newWatchCmd(flags),
		newPickCmd(flags),
		newZonesCmd(flags),
	)
	return cmd
}

func (f *globalFlags) load() (config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:   f.configPath,
		DotEnv: f.envFiles,
	})
	if err != nil {
		return config.Config{}, err
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*logging.ZapLogger, error) {
	return logging.New(cfg.LogLevel)
}

func formatterFor(cfg config.Config) *clock.Formatter {
	return clock.NewFormatter(clock.WithAbbrevStyle(clock.AbbrevStyle(cfg.AbbrevStyle)))
}
