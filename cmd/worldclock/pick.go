package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-worldclock/pkg/clock"
	"github.com/goliatone/go-worldclock/pkg/picker"
)

func newPickCmd(flags *globalFlags) *cobra.Command {
	var (
		base    string
		initial string
	)
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose zones interactively and print the cities query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			// ParseCities falls back to the default zone, which should not
			// be preselected.
			var start []string
			if strings.Trim(initial, " ,") != "" {
				start = clock.ParseCities(initial)
			}
			p, err := picker.New(&picker.SurveyDriver{Out: cmd.ErrOrStderr()},
				picker.WithFormatter(formatterFor(cfg)),
				picker.WithInitial(start),
			)
			if err != nil {
				return err
			}
			zones, err := p.Pick(cmdContext(cmd))
			if err != nil {
				return err
			}

			out := picker.Query(zones)
			if base != "" {
				if out, err = picker.URL(base, zones); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&base, "url", "", "print a full URL based on this one instead of the bare query")
	cmd.Flags().StringVar(&initial, "cities", "", "comma separated zones to start from")
	return cmd
}
