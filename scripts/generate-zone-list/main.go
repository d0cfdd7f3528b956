package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	_ "time/tzdata"

	"github.com/goliatone/go-worldclock/components/timezones"
	"github.com/goliatone/go-worldclock/pkg/clock"
)

const header = "# Canonical IANA zone identifiers (from zone1970.tab), plus UTC.\n"

func main() {
	var (
		tabPath    = flag.String("tab", "/usr/share/zoneinfo/zone1970.tab", "zone1970.tab from the tz database")
		outputPath = flag.String("output", "components/timezones/data/iana_timezones.txt", "output path for the zone list")
	)
	flag.Parse()

	zones, err := readZones(*tabPath)
	if err != nil {
		log.Fatalf("read zones: %v", err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	for _, zone := range zones {
		buf.WriteString(zone)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(*outputPath, buf.Bytes(), 0o644); err != nil {
		log.Fatalf("write %s: %v", *outputPath, err)
	}
	fmt.Printf("Wrote %d zones to %s\n", len(zones), *outputPath)
}

// readZones collects the TZ column of zone1970.tab, keeping only zones the
// clock formatter can load with the embedded tzdata.
func readZones(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	formatter := clock.NewFormatter()
	loadable := timezones.Resolvable(formatter)
	zones, err := timezones.LoadZones(f, func(zone string) bool {
		if loadable(zone) {
			return true
		}
		_, err := formatter.Location(zone)
		log.Printf("skipping %s: %v", zone, err)
		return false
	})
	if err != nil {
		return nil, err
	}

	i := sort.SearchStrings(zones, "UTC")
	if i == len(zones) || zones[i] != "UTC" {
		zones = append(zones, "")
		copy(zones[i+1:], zones[i:])
		zones[i] = "UTC"
	}
	return zones, nil
}
