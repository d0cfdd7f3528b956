package clock

import "strings"

// CityName derives the display name of a zone: the segment after the last
// '/' with underscores turned into spaces. No validation is applied, so
// "Not/ARealZone" yields "ARealZone".
func CityName(zone string) string {
	if idx := strings.LastIndex(zone, "/"); idx >= 0 {
		zone = zone[idx+1:]
	}
	return strings.ReplaceAll(zone, "_", " ")
}

// Region returns the part of the identifier before the city segment, or an
// empty string for single segment zones such as "UTC".
func Region(zone string) string {
	idx := strings.LastIndex(zone, "/")
	if idx < 0 {
		return ""
	}
	return strings.ReplaceAll(zone[:idx], "_", " ")
}
