// Package page renders the host document for a clock board: an HTML shell
// produced from a pongo2 template with the board mounted into #clock-row.
package page

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/dom"
	"github.com/goliatone/go-worldclock/pkg/render"
	rendertemplate "github.com/goliatone/go-worldclock/pkg/render/template"
	gotemplate "github.com/goliatone/go-worldclock/pkg/render/template/gotemplate"
)

// DefaultTitle is used when RenderOptions.Title is blank.
const DefaultTitle = "World Clock"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       *string
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet replaces the embedded stylesheet. An empty string disables
// the inline stylesheet.
func WithStylesheet(css string) Option {
	return func(cfg *config) {
		cfg.stylesheet = &css
	}
}

// Renderer produces full HTML documents.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	stylesheet string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	stylesheet := defaultStylesheet()
	if cfg.stylesheet != nil {
		stylesheet = *cfg.stylesheet
	}
	return &Renderer{templates: renderer, stylesheet: stylesheet}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Document renders the host page shell with an empty clock row.
func (r *Renderer) Document(options render.RenderOptions) (*html.Node, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}
	markup, err := r.templates.RenderTemplate(TemplateName, r.templateData(options))
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	doc, err := dom.ParseString(markup)
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}
	if dom.ByID(doc, board.ContainerID) == nil {
		return nil, fmt.Errorf("page renderer: template has no #%s container", board.ContainerID)
	}
	return doc, nil
}

// Render serializes the document holding b. A board that is not mounted in a
// document is mounted into a fresh page first; an unmounted board is also
// rendered at options.Instant().
func (r *Renderer) Render(ctx context.Context, b *board.Board, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("page renderer: board is nil")
	}

	root := b.Root()
	if root == nil || root.Type != html.DocumentNode {
		doc, err := r.Document(options)
		if err != nil {
			return nil, err
		}
		if err := adopt(b, doc, options); err != nil {
			return nil, err
		}
		root = doc
	}

	var buf bytes.Buffer
	err := b.View(func(*html.Node) error {
		return dom.Render(&buf, root)
	})
	if err != nil {
		return nil, fmt.Errorf("page renderer: %w", err)
	}
	return buf.Bytes(), nil
}

// adopt moves b into doc. Columns already mounted elsewhere are carried over
// unchanged; otherwise the board renders fresh columns.
func adopt(b *board.Board, doc *html.Node, options render.RenderOptions) error {
	target := dom.ByID(doc, board.ContainerID)
	hadColumns := false
	err := b.View(func(current *html.Node) error {
		if current == nil {
			return nil
		}
		for c := current.FirstChild; c != nil; {
			next := c.NextSibling
			current.RemoveChild(c)
			target.AppendChild(c)
			hadColumns = true
			c = next
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := b.Mount(doc); err != nil {
		return fmt.Errorf("page renderer: %w", err)
	}
	if !hadColumns {
		b.Render(options.Instant())
	}
	return nil
}

func (r *Renderer) templateData(options render.RenderOptions) map[string]any {
	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = DefaultTitle
	}

	data := map[string]any{
		"title":          title,
		"stylesheet":     r.stylesheet,
		"reload_seconds": options.ReloadSeconds,
		"header_html":    SanitizeHeader(options.HeaderHTML),
		"css_vars":       themeVars(options),
	}
	if cfg := options.Theme; cfg != nil {
		data["theme_name"] = cfg.Theme
		data["theme_variant"] = cfg.Variant
	}
	return data
}

// themeVars merges explicit CSS variables with tokens, which are exposed as
// --<token>. Explicit variables win.
func themeVars(options render.RenderOptions) []map[string]string {
	cfg := options.Theme
	if cfg == nil {
		return nil
	}

	vars := make(map[string]string, len(cfg.Tokens)+len(cfg.CSSVars))
	for key, value := range cfg.Tokens {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars["--"+strings.TrimPrefix(key, "--")] = value
	}
	for key, value := range cfg.CSSVars {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if !strings.HasPrefix(key, "--") {
			key = "--" + key
		}
		vars[key] = value
	}
	if len(vars) == 0 {
		return nil
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]map[string]string, 0, len(names))
	for _, name := range names {
		out = append(out, map[string]string{"name": name, "value": vars[name]})
	}
	return out
}
