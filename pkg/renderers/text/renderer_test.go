package text

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/render"
)

func TestRenderer_AlignsColumns(t *testing.T) {
	at := time.Date(2024, time.January, 15, 12, 5, 0, 0, time.UTC)
	b := board.New([]string{"America/New_York", "Asia/Tokyo", "Not/ARealZone"})

	out, err := New(2).Render(context.Background(), b, render.RenderOptions{Now: at})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "" +
		"07:05     21:05  --:--\n" +
		"New York  Tokyo  ARealZone\n" +
		"EST       JST\n"
	if string(out) != want {
		t.Fatalf("unexpected output\nwant:\n%s\ngot:\n%s", want, out)
	}
	if !b.Mounted() {
		t.Fatalf("expected board to be mounted after render")
	}
}

func TestRenderer_UsesMountedState(t *testing.T) {
	at := time.Date(2024, time.January, 15, 12, 5, 0, 0, time.UTC)
	b := board.New([]string{"UTC"})
	b.EnsureMounted(at)
	b.Refresh(at.Add(10 * time.Minute))

	out, err := New(0).Render(context.Background(), b, render.RenderOptions{Now: at})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "12:15\nUTC\nUTC\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(1).Render(ctx, board.New(nil), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}
