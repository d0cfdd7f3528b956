// Package picker walks a user through choosing clock zones on the terminal
// and builds the cities query for the chosen list.
package picker

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-worldclock/components/timezones"
	"github.com/goliatone/go-worldclock/pkg/clock"
)

var (
	// ErrAborted signals the user interrupted a prompt.
	ErrAborted = errors.New("picker: aborted")
	// ErrNoSelection is returned when the user finishes without a zone.
	ErrNoSelection = errors.New("picker: no zones selected")
)

const defaultMatchLimit = 25

// Option configures a Picker.
type Option func(*Picker)

// WithZones replaces the embedded zone list.
func WithZones(zones []string) Option {
	return func(p *Picker) {
		p.zones = append([]string{}, zones...)
	}
}

// WithMatchLimit caps the matches offered per search.
func WithMatchLimit(limit int) Option {
	return func(p *Picker) {
		if limit > 0 {
			p.limit = limit
		}
	}
}

// WithFormatter sets the formatter used for the time preview next to each
// match.
func WithFormatter(f *clock.Formatter) Option {
	return func(p *Picker) {
		if f != nil {
			p.formatter = f
		}
	}
}

func WithClock(src clock.Clock) Option {
	return func(p *Picker) {
		if src != nil {
			p.clock = src
		}
	}
}

// WithInitial preselects zones, for example the list currently configured.
func WithInitial(zones []string) Option {
	return func(p *Picker) {
		p.initial = append([]string{}, zones...)
	}
}

// Picker collects an ordered zone list by repeated search and select rounds.
type Picker struct {
	driver    PromptDriver
	zones     []string
	limit     int
	formatter *clock.Formatter
	clock     clock.Clock
	initial   []string
}

// New builds a picker. A nil driver prompts on the terminal.
func New(driver PromptDriver, opts ...Option) (*Picker, error) {
	if driver == nil {
		driver = &SurveyDriver{}
	}
	p := &Picker{
		driver:    driver,
		limit:     defaultMatchLimit,
		formatter: clock.NewFormatter(),
		clock:     clock.SystemClock{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.zones == nil {
		zones, err := timezones.DefaultZones()
		if err != nil {
			return nil, fmt.Errorf("picker: load zones: %w", err)
		}
		p.zones = zones
	}
	return p, nil
}

// Pick runs the prompt flow. Selected zones keep the order they were
// chosen in; a blank filter ends the flow.
func (p *Picker) Pick(ctx context.Context) ([]string, error) {
	selected := append([]string{}, p.initial...)
	opts := timezones.NewOptions(timezones.WithMaxLimit(p.limit))

	for {
		query, err := p.driver.Input(ctx, InputConfig{
			Message: "Search zones (blank to finish):",
			Help:    "Matches city names and identifiers, e.g. tokyo or America/",
		})
		if err != nil {
			return nil, err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			break
		}

		matches := timezones.Search(p.zones, query, p.limit, opts)
		if len(matches) == 0 {
			if err := p.driver.Info(ctx, fmt.Sprintf("No zones match %q.", query)); err != nil {
				return nil, err
			}
			continue
		}

		labels := make([]string, len(matches))
		var defaults []int
		now := p.clock.Now()
		for i, zone := range matches {
			labels[i] = p.label(now, zone)
			if contains(selected, zone) {
				defaults = append(defaults, i)
			}
		}

		picked, err := p.driver.MultiSelect(ctx, SelectConfig{
			Message:  "Select zones:",
			Options:  labels,
			Defaults: defaults,
			PageSize: 12,
		})
		if err != nil {
			return nil, err
		}
		selected = merge(selected, matches, picked)

		more, err := p.driver.Confirm(ctx, ConfirmConfig{Message: "Search again?", Default: false})
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	if len(selected) == 0 {
		return nil, ErrNoSelection
	}
	return selected, nil
}

func (p *Picker) label(now time.Time, zone string) string {
	opt := timezones.OptionFor(zone)
	abbr := p.formatter.Abbreviation(now, zone).AbbreviationText()
	return strings.TrimSpace(fmt.Sprintf("%s  %s %s", opt.Label, p.formatter.Time(now, zone).TimeText(), abbr))
}

// merge applies one select round: matches that were picked are added in
// order, matches that were shown but not picked are removed.
func merge(selected, matches []string, picked []int) []string {
	chosen := make(map[string]bool, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(matches) {
			chosen[matches[idx]] = true
		}
	}
	shown := make(map[string]bool, len(matches))
	for _, zone := range matches {
		shown[zone] = true
	}

	out := make([]string, 0, len(selected)+len(picked))
	for _, zone := range selected {
		if shown[zone] && !chosen[zone] {
			continue
		}
		out = append(out, zone)
	}
	for _, zone := range matches {
		if chosen[zone] && !contains(out, zone) {
			out = append(out, zone)
		}
	}
	return out
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// Query builds the cities query for zones, keeping slashes and commas
// readable: cities=Europe/London,Asia/Tokyo.
func Query(zones []string) string {
	parts := make([]string, 0, len(zones))
	for _, zone := range zones {
		zone = strings.TrimSpace(zone)
		if zone == "" {
			continue
		}
		parts = append(parts, strings.ReplaceAll(url.QueryEscape(zone), "%2F", "/"))
	}
	return clock.CitiesParam + "=" + strings.Join(parts, ",")
}

// URL appends the cities query for zones to base, replacing any cities
// parameter already present.
func URL(base string, zones []string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("picker: parse url: %w", err)
	}
	values := u.Query()
	values.Del(clock.CitiesParam)
	rest := values.Encode()
	u.RawQuery = Query(zones)
	if rest != "" {
		u.RawQuery = rest + "&" + u.RawQuery
	}
	return u.String(), nil
}
