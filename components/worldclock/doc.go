// Package worldclock serves a row of live clocks over net/http.
//
// A request such as
//
//	GET /clock?cities=America/New_York,Asia/Tokyo
//
// returns an HTML page whose #clock-row container holds one column per zone.
// Every distinct city list owns a board that keeps refreshing in the
// background, so the page's meta refresh always picks up current times.
// format=json returns the mounted columns as records and format=text prints
// them as aligned lines.
package worldclock
