package worldclock

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/url"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/clock"
)

var winter = time.Date(2024, time.January, 15, 12, 5, 0, 0, time.UTC)

func TestRenderURL_JSON(t *testing.T) {
	location, err := url.Parse("https://example.test/?cities=Asia/Kolkata,%20Asia/Dubai,Asia/Kathmandu")
	if err != nil {
		t.Fatal(err)
	}
	out, err := RenderURL(context.Background(), location, "json", RenderOptions{Now: winter})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var payload struct {
		Data []Mounted `json:"data"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := make([]string, 0, len(payload.Data))
	for _, col := range payload.Data {
		got = append(got, col.City+" "+col.Time+" "+col.Abbreviation)
	}
	want := []string{"Kolkata 17:35 IST", "Dubai 16:05 GMT+4", "Kathmandu 17:50 GMT+5:45"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DefaultsToHTMLAndLondon(t *testing.T) {
	out, err := Render(context.Background(), nil, "", RenderOptions{Now: winter})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	markup := string(out)
	for _, want := range []string{`id="clock-row"`, `data-timezone="Europe/London"`, ">12:05</time>", ">GMT</div>"} {
		if !strings.Contains(markup, want) {
			t.Fatalf("expected %q in:\n%s", want, markup)
		}
	}
}

func TestRender_OffsetStyle(t *testing.T) {
	out, err := Render(context.Background(), []string{"America/New_York"}, "text", RenderOptions{Now: winter},
		board.WithFormatter(clock.NewFormatter(clock.WithAbbrevStyle(clock.AbbrevOffset))))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "GMT-5") {
		t.Fatalf("expected offset label in %q", out)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if _, err := Render(context.Background(), nil, "pdf", RenderOptions{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestEmbeddedFiles(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("expected page template: %v", err)
	}
	data, err := fs.ReadFile(AssetsFS(), "worldclock.css")
	if err != nil {
		t.Fatalf("expected stylesheet: %v", err)
	}
	if !strings.Contains(string(data), ".clock-column") {
		t.Fatal("stylesheet misses clock column rules")
	}
}
