// Package text prints a clock board as three aligned lines: times, city
// names and zone abbreviations.
package text

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/render"
)

// Renderer writes plain text rows.
type Renderer struct {
	padding int
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a text renderer with the given column padding. Values below 1
// use a padding of 4.
func New(padding int) *Renderer {
	if padding < 1 {
		padding = 4
	}
	return &Renderer{padding: padding}
}

func (r *Renderer) Name() string        { return "text" }
func (r *Renderer) ContentType() string { return "text/plain; charset=utf-8" }

// Render prints the mounted columns of b. An unmounted board is mounted into
// a detached container and rendered at options.Instant() first.
func (r *Renderer) Render(ctx context.Context, b *board.Board, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("text renderer: board is nil")
	}
	b.EnsureMounted(options.Instant())

	columns := b.Snapshot()
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, r.padding, ' ', tabwriter.TabIndent)
	rows := [3][]string{}
	for _, c := range columns {
		rows[0] = append(rows[0], c.Time)
		rows[1] = append(rows[1], c.City)
		rows[2] = append(rows[2], c.Abbreviation)
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")+"\t"); err != nil {
			return nil, fmt.Errorf("text renderer: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}
	return trimLines(buf.Bytes()), nil
}

func trimLines(in []byte) []byte {
	lines := bytes.Split(in, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimRight(line, " ")
	}
	return bytes.Join(lines, []byte("\n"))
}
