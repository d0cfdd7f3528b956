// Package config loads the clock service configuration from defaults, an
// optional YAML file, an optional .env file and WORLDCLOCK_* environment
// variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	theme "github.com/goliatone/go-theme"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-worldclock/pkg/clock"
)

// EnvPrefix prefixes every environment variable.
const EnvPrefix = "WORLDCLOCK_"

// Theme selects go-theme values applied to the page.
type Theme struct {
	Name    string            `yaml:"name" env:"NAME"`
	Variant string            `yaml:"variant" env:"VARIANT"`
	Tokens  map[string]string `yaml:"tokens" env:"TOKENS"`
}

// Config holds all configuration for the service and CLI.
type Config struct {
	Addr            string        `yaml:"addr" env:"ADDR"`
	DefaultTimezone string        `yaml:"default_timezone" env:"DEFAULT_TIMEZONE"`
	AbbrevStyle     string        `yaml:"abbreviation_style" env:"ABBREVIATION_STYLE"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"REFRESH_INTERVAL"`
	ReloadSeconds   int           `yaml:"reload_seconds" env:"RELOAD_SECONDS"`
	MaxSessions     int           `yaml:"max_sessions" env:"MAX_SESSIONS"`
	Title           string        `yaml:"title" env:"TITLE"`
	HeaderHTML      string        `yaml:"header_html" env:"HEADER_HTML"`
	LogLevel        string        `yaml:"log_level" env:"LOG_LEVEL"`
	ShutdownGrace   time.Duration `yaml:"shutdown_grace" env:"SHUTDOWN_GRACE"`
	Theme           Theme         `yaml:"theme" envPrefix:"THEME_"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:            ":8383",
		DefaultTimezone: clock.DefaultTimezone,
		AbbrevStyle:     string(clock.AbbrevZone),
		RefreshInterval: 60 * time.Second,
		ReloadSeconds:   60,
		MaxSessions:     64,
		Title:           "World Clock",
		LogLevel:        "info",
		ShutdownGrace:   5 * time.Second,
	}
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Fs resolves Path and DotEnv. Defaults to the OS filesystem.
	Fs afero.Fs
	// Path is an optional YAML file. A missing file is an error.
	Path string
	// DotEnv lists optional .env files; missing ones are skipped.
	DotEnv []string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// Load resolves the configuration.
func Load(opts LoadOptions) (Config, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	cfg := Default()

	if path := strings.TrimSpace(opts.Path); path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	environ := opts.Environ
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}
	merged, err := mergeDotEnv(fs, opts.DotEnv, environ)
	if err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: merged,
	}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeDotEnv layers .env values under the real environment, which always
// wins, mirroring godotenv.Load.
func mergeDotEnv(fs afero.Fs, files []string, environ map[string]string) (map[string]string, error) {
	merged := make(map[string]string, len(environ))
	for _, file := range files {
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
		values, err := godotenv.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", file, err)
		}
		for key, value := range values {
			if _, exists := merged[key]; !exists {
				merged[key] = value
			}
		}
	}
	for key, value := range environ {
		merged[key] = value
	}
	return merged, nil
}

// RendererTheme converts the theme section for page rendering. It returns
// nil when no theme is configured.
func (c Config) RendererTheme() *theme.RendererConfig {
	if c.Theme.Name == "" && c.Theme.Variant == "" && len(c.Theme.Tokens) == 0 {
		return nil
	}
	tokens := make(map[string]string, len(c.Theme.Tokens))
	for key, value := range c.Theme.Tokens {
		tokens[key] = value
	}
	return &theme.RendererConfig{
		Theme:   c.Theme.Name,
		Variant: c.Theme.Variant,
		Tokens:  tokens,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: addr is required")
	}
	if strings.TrimSpace(c.DefaultTimezone) == "" {
		return fmt.Errorf("config: default_timezone is required")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("config: refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	if c.ReloadSeconds < 0 {
		return fmt.Errorf("config: reload_seconds must not be negative, got %d", c.ReloadSeconds)
	}
	if c.MaxSessions <= 0 {
		return fmt.Errorf("config: max_sessions must be positive, got %d", c.MaxSessions)
	}
	if !clock.ValidAbbrevStyle(clock.AbbrevStyle(c.AbbrevStyle)) {
		return fmt.Errorf("config: abbreviation_style must be %q, %q or %q, got %q",
			clock.AbbrevZone, clock.AbbrevOffset, clock.AbbrevShort, c.AbbrevStyle)
	}
	return nil
}
