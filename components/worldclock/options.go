package worldclock

import (
	"net/http"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-worldclock/internal/logging"
	"github.com/goliatone/go-worldclock/internal/metrics"
	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/clock"
)

const (
	defaultRoutePath     = "/clock"
	defaultMaxSessions   = 64
	defaultReloadSeconds = 60
	defaultTitle         = "World Clock"
)

// GuardFunc rejects a request by returning an error. Errors exposing
// StatusCode() int choose the response status; anything else is a 403.
type GuardFunc func(r *http.Request) error

// Options configures the clock page endpoint.
type Options struct {
	RoutePath       string
	CitiesParam     string
	FormatParam     string
	DefaultTimezone string
	AbbrevStyle     clock.AbbrevStyle

	// RefreshInterval is how often live boards update their columns.
	RefreshInterval time.Duration
	// MaxSessions bounds the number of live boards. The least recently
	// requested board is stopped when a new city list arrives at capacity.
	MaxSessions int
	// ReloadSeconds sets the page meta refresh. Zero disables it; negative
	// values select the default.
	ReloadSeconds int

	Title      string
	HeaderHTML string
	Theme      *theme.RendererConfig
	Guard      GuardFunc

	Logger  logging.Logger
	Metrics *metrics.Metrics
	Clock   clock.Clock
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:       defaultRoutePath,
		CitiesParam:     clock.CitiesParam,
		FormatParam:     "format",
		DefaultTimezone: clock.DefaultTimezone,
		AbbrevStyle:     clock.AbbrevZone,
		RefreshInterval: board.DefaultInterval,
		MaxSessions:     defaultMaxSessions,
		ReloadSeconds:   defaultReloadSeconds,
		Title:           defaultTitle,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaultRoutePath
	}
	if opts.CitiesParam == "" {
		opts.CitiesParam = clock.CitiesParam
	}
	if opts.FormatParam == "" {
		opts.FormatParam = "format"
	}
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = clock.DefaultTimezone
	}
	if opts.AbbrevStyle == "" {
		opts.AbbrevStyle = clock.AbbrevZone
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = board.DefaultInterval
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = defaultMaxSessions
	}
	if opts.ReloadSeconds < 0 {
		opts.ReloadSeconds = defaultReloadSeconds
	}
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = clock.SystemClock{}
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		o.RoutePath = path
	}
}

func WithCitiesParam(name string) OptionFn {
	return func(o *Options) {
		o.CitiesParam = name
	}
}

func WithFormatParam(name string) OptionFn {
	return func(o *Options) {
		o.FormatParam = name
	}
}

// WithDefaultTimezone sets the zone shown when the cities parameter is
// missing or empty.
func WithDefaultTimezone(zone string) OptionFn {
	return func(o *Options) {
		o.DefaultTimezone = zone
	}
}

func WithAbbrevStyle(style clock.AbbrevStyle) OptionFn {
	return func(o *Options) {
		o.AbbrevStyle = style
	}
}

func WithRefreshInterval(interval time.Duration) OptionFn {
	return func(o *Options) {
		o.RefreshInterval = interval
	}
}

func WithMaxSessions(n int) OptionFn {
	return func(o *Options) {
		o.MaxSessions = n
	}
}

func WithReloadSeconds(seconds int) OptionFn {
	return func(o *Options) {
		o.ReloadSeconds = seconds
	}
}

func WithTitle(title string) OptionFn {
	return func(o *Options) {
		o.Title = title
	}
}

// WithHeaderHTML sets markup shown above the clock row. It is sanitized
// before rendering.
func WithHeaderHTML(markup string) OptionFn {
	return func(o *Options) {
		o.HeaderHTML = markup
	}
}

func WithTheme(cfg *theme.RendererConfig) OptionFn {
	return func(o *Options) {
		o.Theme = cfg
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		o.Guard = guard
	}
}

func WithLogger(logger logging.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) OptionFn {
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithClock sets the time source for rendering and refreshing boards.
func WithClock(src clock.Clock) OptionFn {
	return func(o *Options) {
		o.Clock = src
	}
}
