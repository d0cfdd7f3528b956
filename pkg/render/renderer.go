package render

import (
	"context"

	"github.com/goliatone/go-worldclock/pkg/board"
)

// Renderer converts a clock board into a byte representation (HTML page,
// JSON records, plain text row).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, b *board.Board, options RenderOptions) ([]byte, error)
}
