package worldclock

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goliatone/go-worldclock/components/timezones"
	"github.com/goliatone/go-worldclock/pkg/board"
	"github.com/goliatone/go-worldclock/pkg/clock"
	"github.com/goliatone/go-worldclock/pkg/render"
	"github.com/goliatone/go-worldclock/pkg/renderers/page"
	"github.com/goliatone/go-worldclock/pkg/renderers/records"
	"github.com/goliatone/go-worldclock/pkg/renderers/text"
)

// Handler serves the clock page. Each distinct city list gets its own board,
// mounted into a page document and refreshed in the background.
type Handler struct {
	opts      Options
	formatter *clock.Formatter
	pages     *page.Renderer
	renderers *render.Registry
	sessions  *sessions
}

var _ http.Handler = (*Handler)(nil)

func NewHandler(fns ...OptionFn) (*Handler, error) {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
// Defaults are applied again so zero fields are safe.
func HandlerWithOptions(opts Options) (*Handler, error) {
	opts = NewOptions(func(o *Options) { *o = opts })

	pages, err := page.New()
	if err != nil {
		return nil, fmt.Errorf("worldclock: %w", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(pages)
	registry.MustRegister(records.New())
	registry.MustRegister(text.New(0))

	h := &Handler{
		opts:      opts,
		pages:     pages,
		renderers: registry,
	}
	h.formatter = clock.NewFormatter(
		clock.WithAbbrevStyle(opts.AbbrevStyle),
		clock.WithFailureHook(h.formatFailed),
	)

	h.sessions, err = newSessions(opts.MaxSessions, h.newSession, opts.Logger, opts.Metrics)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.opts.Guard != nil {
		if err := h.opts.Guard(r); err != nil {
			timezones.WriteGuardError(w, err)
			return
		}
	}

	values := r.URL.Query()
	renderer, err := h.renderers.Resolve(values.Get(h.opts.FormatParam))
	if err != nil {
		http.Error(w, "unsupported format", http.StatusBadRequest)
		return
	}

	zones := clock.ParseCitiesWithDefault(values.Get(h.opts.CitiesParam), h.opts.DefaultTimezone)
	sess, err := h.sessions.get(zones)
	if err != nil {
		if errors.Is(err, ErrClosed) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		h.opts.Logger.Error("clock board unavailable", "cities", sessionKey(zones), "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	body, err := renderer.Render(r.Context(), sess.board, h.renderOptions())
	if err != nil {
		h.opts.Logger.Error("clock render failed", "format", renderer.Name(), "cities", sess.key, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.opts.Metrics.ObserveRender(renderer.Name())

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// Close stops every live board.
func (h *Handler) Close() {
	if h == nil || h.sessions == nil {
		return
	}
	h.sessions.close()
}

// Sessions returns the city lists with a live board, most recent first.
func (h *Handler) Sessions() []string {
	keys := h.sessions.keys()
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

// Formats lists the accepted values of the format parameter.
func (h *Handler) Formats() []string {
	return h.renderers.List()
}

func (h *Handler) renderOptions() render.RenderOptions {
	return render.RenderOptions{
		Title:         h.opts.Title,
		HeaderHTML:    h.opts.HeaderHTML,
		ReloadSeconds: h.opts.ReloadSeconds,
		Theme:         h.opts.Theme,
		Now:           h.opts.Clock.Now(),
	}
}

func (h *Handler) newSession(zones []string) (*session, error) {
	b := board.New(zones, board.WithFormatter(h.formatter))
	doc, err := h.pages.Document(h.renderOptions())
	if err != nil {
		return nil, fmt.Errorf("worldclock: build page: %w", err)
	}
	if err := b.Mount(doc); err != nil {
		return nil, fmt.Errorf("worldclock: %w", err)
	}

	key := sessionKey(zones)
	controller := board.NewController(b,
		board.WithInterval(h.opts.RefreshInterval),
		board.WithClock(h.opts.Clock),
		board.WithRefreshHook(func(updated int, elapsed time.Duration) {
			h.opts.Metrics.ObserveRefresh(updated, elapsed)
			h.opts.Logger.Debug("clock board refreshed", "cities", key, "columns", updated, "elapsed", elapsed)
		}),
	)
	return &session{board: b, controller: controller}, nil
}

func (h *Handler) formatFailed(kind clock.FailureKind, zone string, err error) {
	h.opts.Metrics.ObserveFormatFailure(string(kind))
	h.opts.Logger.Debug("clock format failed", "kind", string(kind), "timezone", zone, "error", err)
}
