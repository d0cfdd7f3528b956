package render

import (
	"time"

	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data renderers use to customise their
// output without touching the board itself.
type RenderOptions struct {
	// Title is the document title of the host page.
	Title string
	// HeaderHTML is an optional markup snippet shown above the clock row.
	// Page renderers sanitize it before use.
	HeaderHTML string
	// ReloadSeconds adds a meta refresh to the host page when positive.
	ReloadSeconds int
	// Theme carries resolved go-theme tokens; CSSVars and Tokens become
	// custom properties on :root.
	Theme *theme.RendererConfig
	// Now is the instant used when a renderer has to mount and render a board
	// that is not mounted yet. Zero means time.Now.
	Now time.Time
}

// Instant returns Now or the current time.
func (o RenderOptions) Instant() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}
