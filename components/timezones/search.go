package timezones

import (
	"sort"
	"strings"

	"github.com/goliatone/go-worldclock/pkg/clock"
)

// Option is a selectable zone.
type Option struct {
	Value        string `json:"value"`
	Label        string `json:"label"`
	City         string `json:"city"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// OptionFor builds the option for zone. The label reads "City (Zone)" and
// single segment zones such as "UTC" label themselves.
func OptionFor(zone string) Option {
	city := clock.CityName(zone)
	label := zone
	if city != zone {
		label = city + " (" + zone + ")"
	}
	return Option{Value: zone, Label: label, City: city}
}

// Search returns zones whose identifier or city name contains query, ignoring
// case and treating spaces and underscores alike. Prefix matches on either
// form sort first.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(zones) <= limit {
				return append([]string{}, zones...)
			}
			return append([]string{}, zones[:limit]...)
		}
		return nil
	}

	q := normalize(query)
	matches := make([]matchedZone, 0, 32)
	for _, zone := range zones {
		lowerZone := normalize(zone)
		lowerCity := normalize(clock.CityName(zone))
		if !strings.Contains(lowerZone, q) && !strings.Contains(lowerCity, q) {
			continue
		}
		matches = append(matches, matchedZone{
			name:     zone,
			isPrefix: strings.HasPrefix(lowerZone, q) || strings.HasPrefix(lowerCity, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

// FilterRegion keeps zones whose leading segment or full region equals
// region, ignoring case. "America" keeps "America/Argentina/Salta" and so
// does "America/Argentina".
func FilterRegion(zones []string, region string) []string {
	region = strings.ReplaceAll(strings.TrimSpace(region), "_", " ")
	out := make([]string, 0, len(zones))
	for _, zone := range zones {
		full := clock.Region(zone)
		lead, _, _ := strings.Cut(full, "/")
		if strings.EqualFold(lead, region) || strings.EqualFold(full, region) {
			out = append(out, zone)
		}
	}
	return out
}

// SearchOptions is Search mapped to options.
func SearchOptions(zones []string, query string, limit int, opts Options) []Option {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, zone := range results {
		out = append(out, OptionFor(zone))
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}

type matchedZone struct {
	name     string
	isPrefix bool
}
