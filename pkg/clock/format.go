package clock

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
)

const (
	// TimePlaceholder replaces the time of day when a zone cannot be loaded.
	TimePlaceholder = "--:--"
	// timeLayout renders 24-hour HH:MM.
	timeLayout = "15:04"
)

// ErrLocalZone is returned for the "Local" identifier, which would leak the
// host zone into the rendered output.
var ErrLocalZone = errors.New("clock: local zone is not supported")

// Result carries a formatted value or marks it as unavailable.
type Result struct {
	Value string
	OK    bool
}

// Available wraps a formatted value.
func Available(value string) Result { return Result{Value: value, OK: true} }

// Unavailable marks a value that could not be produced.
func Unavailable() Result { return Result{} }

// Or returns the value when available and placeholder otherwise.
func (r Result) Or(placeholder string) string {
	if !r.OK {
		return placeholder
	}
	return r.Value
}

// TimeText maps the result to the time column text.
func (r Result) TimeText() string { return r.Or(TimePlaceholder) }

// AbbreviationText maps the result to the abbreviation label text.
func (r Result) AbbreviationText() string { return r.Or("") }

// AbbrevStyle selects how zone abbreviations are rendered.
type AbbrevStyle string

const (
	// AbbrevZone uses the tzdata abbreviation (BST, JST, EST) and falls back
	// to a GMT offset when tzdata only has a numeric name.
	AbbrevZone AbbrevStyle = "zone"
	// AbbrevOffset always renders a GMT offset (GMT, GMT+9, GMT-3:30).
	AbbrevOffset AbbrevStyle = "offset"
	// AbbrevShort follows the short English names browsers print: letters
	// for the North American zones and UTC, a GMT offset everywhere else.
	AbbrevShort AbbrevStyle = "short"
)

// shortNames are the tzdata abbreviations kept by AbbrevShort.
var shortNames = map[string]struct{}{
	"UTC": {},
	"EST": {}, "EDT": {},
	"CST": {}, "CDT": {},
	"MST": {}, "MDT": {},
	"PST": {}, "PDT": {},
	"AKST": {}, "AKDT": {},
	"HST": {},
}

// ValidAbbrevStyle reports whether style is one of the known styles.
func ValidAbbrevStyle(style AbbrevStyle) bool {
	switch style {
	case AbbrevZone, AbbrevOffset, AbbrevShort:
		return true
	}
	return false
}

// FailureKind names the formatting operation that failed.
type FailureKind string

const (
	FailureTime         FailureKind = "time"
	FailureAbbreviation FailureKind = "abbreviation"
)

// FailureHook observes swallowed formatting failures.
type FailureHook func(kind FailureKind, zone string, err error)

// LocationLoader resolves a zone identifier.
type LocationLoader func(name string) (*time.Location, error)

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithAbbrevStyle overrides the abbreviation style.
func WithAbbrevStyle(style AbbrevStyle) FormatterOption {
	return func(f *Formatter) {
		if style == "" {
			return
		}
		f.style = style
	}
}

// WithLocationLoader replaces time.LoadLocation.
func WithLocationLoader(loader LocationLoader) FormatterOption {
	return func(f *Formatter) {
		if loader != nil {
			f.load = loader
		}
	}
}

// WithFailureHook registers a callback invoked on every swallowed failure.
func WithFailureHook(hook FailureHook) FormatterOption {
	return func(f *Formatter) {
		f.onFailure = hook
	}
}

type cachedLocation struct {
	loc *time.Location
	err error
}

// Formatter renders times and abbreviations per zone. It caches resolved
// locations, including failures, and is safe for concurrent use.
type Formatter struct {
	style     AbbrevStyle
	load      LocationLoader
	onFailure FailureHook

	mu    sync.RWMutex
	cache map[string]cachedLocation
}

// NewFormatter builds a Formatter backed by time.LoadLocation.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		style: AbbrevZone,
		load:  time.LoadLocation,
		cache: make(map[string]cachedLocation),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Time renders t as HH:MM in zone.
func (f *Formatter) Time(t time.Time, zone string) Result {
	loc, err := f.location(zone)
	if err != nil {
		f.fail(FailureTime, zone, err)
		return Unavailable()
	}
	return Available(t.In(loc).Format(timeLayout))
}

// Abbreviation renders the short zone label in effect at t.
func (f *Formatter) Abbreviation(t time.Time, zone string) Result {
	loc, err := f.location(zone)
	if err != nil {
		f.fail(FailureAbbreviation, zone, err)
		return Unavailable()
	}
	name, offset := t.In(loc).Zone()
	switch {
	case f.style == AbbrevOffset || !isAlphaAbbrev(name):
		return Available(gmtLabel(offset))
	case f.style == AbbrevShort && !isShortName(loc, name):
		return Available(gmtLabel(offset))
	}
	return Available(name)
}

// Location resolves zone through the cache.
func (f *Formatter) Location(zone string) (*time.Location, error) {
	return f.location(zone)
}

func (f *Formatter) location(zone string) (*time.Location, error) {
	f.mu.RLock()
	entry, ok := f.cache[zone]
	f.mu.RUnlock()
	if ok {
		return entry.loc, entry.err
	}

	entry = f.resolve(zone)

	f.mu.Lock()
	f.cache[zone] = entry
	f.mu.Unlock()
	return entry.loc, entry.err
}

func (f *Formatter) resolve(zone string) cachedLocation {
	trimmed := strings.TrimSpace(zone)
	if trimmed == "" {
		return cachedLocation{err: fmt.Errorf("clock: empty zone identifier")}
	}
	if trimmed == "Local" {
		return cachedLocation{err: ErrLocalZone}
	}
	loc, err := f.load(trimmed)
	if err != nil {
		return cachedLocation{err: fmt.Errorf("clock: load zone %q: %w", trimmed, err)}
	}
	if loc == nil {
		return cachedLocation{err: fmt.Errorf("clock: load zone %q: nil location", trimmed)}
	}
	return cachedLocation{loc: loc}
}

func (f *Formatter) fail(kind FailureKind, zone string, err error) {
	if f.onFailure != nil {
		f.onFailure(kind, zone, err)
	}
}

// isShortName keeps North American names only for America/ and US/ zones,
// so Asia/Shanghai's CST still renders as GMT+8.
func isShortName(loc *time.Location, name string) bool {
	if _, ok := shortNames[name]; !ok {
		return false
	}
	if name == "UTC" {
		return true
	}
	zone := loc.String()
	return strings.HasPrefix(zone, "America/") || strings.HasPrefix(zone, "US/") || zone == "Pacific/Honolulu"
}

func isAlphaAbbrev(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// gmtLabel renders an offset in seconds east of UTC as GMT, GMT+9 or GMT-3:30.
func gmtLabel(offset int) string {
	if offset == 0 {
		return "GMT"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("GMT%s%d", sign, hours)
	}
	return fmt.Sprintf("GMT%s%d:%02d", sign, hours, minutes)
}
