// Package worldclock renders rows of clocks for a list of IANA zones.
//
// The quickest entry point renders once:
//
//	out, err := worldclock.Render(ctx, []string{"Europe/London", "Asia/Tokyo"}, "html", worldclock.RenderOptions{})
//
// Long running hosts should mount the components/worldclock handler, which
// keeps boards refreshing in the background.
package worldclock

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/clock"
	"github.com/goliatone/go-worldclock/pkg/render"
	"github.com/goliatone/go-worldclock/pkg/renderers/page"
	"github.com/goliatone/go-worldclock/pkg/renderers/records"
	"github.com/goliatone/go-worldclock/pkg/renderers/text"
)

// RenderOptions describes per-call page data; alias of render.RenderOptions.
type RenderOptions = render.RenderOptions

// Column is a formatted clock column; alias of clock.Column.
type Column = clock.Column

// Mounted is a column read back from the DOM; alias of board.Mounted.
type Mounted = board.Mounted

// NewRegistry returns a registry holding the built-in renderers: html (the
// fallback), json and text.
func NewRegistry(options ...page.Option) (*render.Registry, error) {
	pages, err := page.New(options...)
	if err != nil {
		return nil, fmt.Errorf("worldclock: %w", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(pages)
	registry.MustRegister(records.New())
	registry.MustRegister(text.New(0))
	return registry, nil
}

// Render builds a board for zones, renders it at options.Instant() and
// serializes it in format. An empty zone list shows clock.DefaultTimezone.
func Render(ctx context.Context, zones []string, format string, options RenderOptions, boardOpts ...board.Option) ([]byte, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	renderer, err := registry.Resolve(format)
	if err != nil {
		return nil, fmt.Errorf("worldclock: %w", err)
	}
	if len(zones) == 0 {
		zones = []string{clock.DefaultTimezone}
	}
	return renderer.Render(ctx, board.New(zones, boardOpts...), options)
}

// RenderURL reads the cities parameter of location and renders it like
// Render.
func RenderURL(ctx context.Context, location *url.URL, format string, options RenderOptions, boardOpts ...board.Option) ([]byte, error) {
	return Render(ctx, clock.CitiesFromURL(location), format, options, boardOpts...)
}
