package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-worldclock/pkg/clock"
)

//go:embed data/iana_timezones.txt
var dataFS embed.FS

const (
	listPath = "data/iana_timezones.txt"
	// tabZoneField is the TZ column of zone.tab and zone1970.tab rows.
	tabZoneField = 2
)

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

// ZoneFilter reports whether a zone identifier should be kept.
type ZoneFilter func(zone string) bool

// Resolvable keeps the zones f can load. A nil f uses a fresh formatter, so
// "Local" and identifiers missing from the host tzdata are dropped.
func Resolvable(f *clock.Formatter) ZoneFilter {
	if f == nil {
		f = clock.NewFormatter()
	}
	return func(zone string) bool {
		_, err := f.Location(zone)
		return err == nil
	}
}

// Filter returns the zones accepted by every filter, in their original order.
func Filter(zones []string, keep ...ZoneFilter) []string {
	out := make([]string, 0, len(zones))
	for _, zone := range zones {
		if accept(zone, keep) {
			out = append(out, zone)
		}
	}
	return out
}

// DefaultZones returns the embedded zone list, minus anything this host
// cannot resolve. The list is read once and copied on every call.
func DefaultZones() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(listPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		defaultZones, defaultErr = LoadZones(f, Resolvable(nil))
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultZones...), nil
}

// LoadZones reads zone identifiers from r. Lines are either a bare
// identifier or a tab separated zone1970.tab row, whose third column is
// used. Comments, blanks and duplicates are skipped, rows rejected by a
// filter are dropped, and the result is sorted.
func LoadZones(r io.Reader, keep ...ZoneFilter) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 512)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		zone, ok := zoneField(scanner.Text())
		if !ok {
			continue
		}
		if _, dup := seen[zone]; dup {
			continue
		}
		seen[zone] = struct{}{}
		if !accept(zone, keep) {
			continue
		}
		zones = append(zones, zone)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timezones: read zones: %w", err)
	}

	sort.Strings(zones)
	return zones, nil
}

func zoneField(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	if strings.Contains(line, "\t") {
		fields := strings.Split(line, "\t")
		if len(fields) <= tabZoneField {
			return "", false
		}
		line = strings.TrimSpace(fields[tabZoneField])
	}
	return line, line != ""
}

func accept(zone string, keep []ZoneFilter) bool {
	for _, fn := range keep {
		if fn != nil && !fn(zone) {
			return false
		}
	}
	return true
}
