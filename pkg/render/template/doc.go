// Package template defines the renderer-agnostic template contract used by
// the page renderer. The gotemplate subpackage provides a pongo2 engine.
package template
