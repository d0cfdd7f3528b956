package template_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-worldclock/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte(`Hello {{ name }}`)},
		"use-global.tmpl": {Data: []byte(`env={{ settings.env }}`)},
		"use-filter.tmpl": {Data: []byte(`{{ name|shout_adapter_test }}`)},
		"escape.tmpl":     {Data: []byte(`<p>{{ city }}</p><style>:root{--x:{{ value|cssvalue }}}</style>`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada" || buf.String() != result {
		t.Fatalf("unexpected output: result=%q writer=%q", result, buf.String())
	}
}

func TestGoTemplateEngine_RenderStructData(t *testing.T) {
	engine := newEngine(t)

	type payload struct {
		Name string `json:"name"`
	}
	result, err := engine.Render("hello.tmpl", payload{Name: "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Grace" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "dev"},
	}))
	if result, err := engine.RenderTemplate("use-global", nil); err != nil || result != "env=dev" {
		t.Fatalf("unexpected seeded global: %q %v", result, err)
	}

	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}
	if result, err := engine.RenderTemplate("use-global", nil); err != nil || result != "env=staging" {
		t.Fatalf("unexpected global: %q %v", result, err)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout_adapter_test", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout_adapter_test", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestGoTemplateEngine_AutoescapeAndCSSValue(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("escape", map[string]any{
		"city":  "<b>Tokyo</b>",
		"value": "red;}</style><script>",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(result, "<b>") || strings.Contains(result, "<script>") {
		t.Fatalf("expected escaped output, got %q", result)
	}
	if !strings.Contains(result, "--x:red/stylescript}") {
		t.Fatalf("expected sanitized css value, got %q", result)
	}
}

func TestGoTemplateEngine_RenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.Render("{{ a|trim }}-{{ b }}", map[string]any{"a": "  x ", "b": 2})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "x-2" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestGoTemplateEngine_Errors(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
	var nilEngine *gotemplate.Engine
	if _, err := nilEngine.RenderTemplate("hello", nil); err == nil {
		t.Fatalf("expected nil engine error")
	}
}

func TestCSSValue(t *testing.T) {
	if got := gotemplate.CSSValue(` #123456 ; } "x" `); got != "#123456   x" {
		t.Fatalf("unexpected css value: %q", got)
	}
}
