// Package records renders the mounted columns of a board as JSON.
package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/render"
)

// Response is the JSON envelope.
type Response struct {
	Data []board.Mounted `json:"data"`
}

// Renderer emits {"data":[...]}.
type Renderer struct{}

var _ render.Renderer = Renderer{}

func New() Renderer { return Renderer{} }

func (Renderer) Name() string        { return "json" }
func (Renderer) ContentType() string { return "application/json; charset=utf-8" }

func (Renderer) Render(ctx context.Context, b *board.Board, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("records renderer: board is nil")
	}
	b.EnsureMounted(options.Instant())

	columns := b.Snapshot()
	if columns == nil {
		columns = []board.Mounted{}
	}
	payload, err := json.Marshal(Response{Data: columns})
	if err != nil {
		return nil, fmt.Errorf("records renderer: encode: %w", err)
	}
	return append(payload, '\n'), nil
}
