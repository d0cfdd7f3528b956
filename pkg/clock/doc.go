// Package clock holds the display logic behind the world clock row: parsing
// the `cities` query parameter, deriving city names from zone identifiers and
// formatting the time of day and zone abbreviation for an instant.
//
// Formatting never fails loudly. An unknown zone yields an unavailable Result
// that the presentation boundary maps to TimePlaceholder or an empty label.
package clock
