package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-worldclock/components/timezones"
)

func newZonesCmd(flags *globalFlags) *cobra.Command {
	var (
		region string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "zones [query]",
		Short: "List or search the embedded IANA zones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			zones, err := timezones.DefaultZones()
			if err != nil {
				return err
			}
			if region != "" {
				zones = timezones.FilterRegion(zones, region)
			}

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			opts := timezones.NewOptions(
				timezones.WithEmptySearchMode(timezones.EmptySearchTop),
				timezones.WithMaxLimit(len(zones)+1),
			)
			if limit <= 0 {
				limit = len(zones)
			}
			matches := timezones.SearchOptions(zones, query, limit, opts)

			formatter := formatterFor(cfg)
			now := time.Now()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, opt := range matches {
				row := []string{
					opt.Value,
					opt.City,
					formatter.Time(now, opt.Value).TimeText(),
					formatter.Abbreviation(now, opt.Value).AbbreviationText(),
				}
				_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "only zones in this region, e.g. Europe")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of zones (0 lists all)")
	return cmd
}
