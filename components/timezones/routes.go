package timezones

import (
	"fmt"

	"github.com/goliatone/go-worldclock/internal/routing"
)

// Mux is satisfied by *http.ServeMux.
type Mux = routing.Mux

// MountPath returns the lookup route under basePath, joined the same way as
// the clock page route.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return routing.Join(basePath, opts.RoutePath)
}

// RegisterRoutes mounts the zone lookup handler under basePath. Pass
// WithFormatter to have every option carry the zone's current abbreviation.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions is RegisterRoutes for a pre-built Options value.
// When opts carries a Formatter and no explicit zone list, the embedded list
// is narrowed to the zones that formatter can resolve before mounting, so
// the endpoint never offers a city the clock would render as --:--.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("timezones: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	if opts.Zones == nil && opts.Formatter != nil {
		zones, err := DefaultZones()
		if err != nil {
			return "", fmt.Errorf("timezones: %w", err)
		}
		opts.Zones = Filter(zones, Resolvable(opts.Formatter))
	}
	pattern := routing.Join(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	return pattern, nil
}
