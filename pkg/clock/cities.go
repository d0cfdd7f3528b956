package clock

import (
	"net/url"
	"strings"
)

const (
	// CitiesParam is the query parameter carrying the comma separated zones.
	CitiesParam = "cities"
	// DefaultTimezone is used when no zone is requested.
	DefaultTimezone = "Europe/London"
)

// ParseCities splits a comma separated list of zone identifiers, trimming
// whitespace and dropping empty entries. An empty result falls back to
// DefaultTimezone.
func ParseCities(raw string) []string {
	return ParseCitiesWithDefault(raw, DefaultTimezone)
}

// ParseCitiesWithDefault behaves like ParseCities with a caller supplied
// fallback zone. A blank fallback uses DefaultTimezone.
func ParseCitiesWithDefault(raw, fallback string) []string {
	zones := make([]string, 0, strings.Count(raw, ",")+1)
	for _, part := range strings.Split(raw, ",") {
		zone := strings.TrimSpace(part)
		if zone == "" {
			continue
		}
		zones = append(zones, zone)
	}
	if len(zones) > 0 {
		return zones
	}

	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		fallback = DefaultTimezone
	}
	return []string{fallback}
}

// CitiesFromQuery reads CitiesParam from parsed query values.
func CitiesFromQuery(values url.Values) []string {
	if values == nil {
		return ParseCities("")
	}
	return ParseCities(values.Get(CitiesParam))
}

// CitiesFromURL reads CitiesParam from the query string of a location.
func CitiesFromURL(location *url.URL) []string {
	if location == nil {
		return ParseCities("")
	}
	return CitiesFromQuery(location.Query())
}
