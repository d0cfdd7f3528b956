// Package timezones provides the embedded IANA zone list, search helpers and
// a net/http handler returning JSON options for choosing clock cities.
//
// The handler responds to GET and HEAD requests and supports query, region
// and limit parameters. Labels read "City (Zone)" so pickers can show the
// same name the clock row displays. Zone lists are filtered down to the
// identifiers a clock.Formatter can resolve, so no offered city renders as
// a placeholder.
package timezones
