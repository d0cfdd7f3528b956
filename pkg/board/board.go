// Package board mounts a row of clock columns into a DOM container and keeps
// it current. A Board owns the container and the zone list captured when it
// was created; a Controller drives it on a fixed interval.
package board

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/goliatone/go-worldclock/pkg/clock"
	"github.com/goliatone/go-worldclock/pkg/dom"
)

// ErrContainerNotFound is returned by Mount when the document has no element
// with id ContainerID.
var ErrContainerNotFound = errors.New("board: container #" + ContainerID + " not found")

// Option configures a Board.
type Option func(*Board)

// WithFormatter overrides the formatter used for every column.
func WithFormatter(f *clock.Formatter) Option {
	return func(b *Board) {
		if f != nil {
			b.formatter = f
		}
	}
}

// Board renders and refreshes clock columns inside a container element.
type Board struct {
	mu        sync.Mutex
	zones     []string
	formatter *clock.Formatter
	container *html.Node
}

// New creates a board for zones. The slice is copied and never re-read.
func New(zones []string, opts ...Option) *Board {
	b := &Board{
		zones:     append([]string{}, zones...),
		formatter: clock.NewFormatter(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Mount locates the container inside doc and adopts it.
func (b *Board) Mount(doc *html.Node) error {
	container := dom.ByID(doc, ContainerID)
	if container == nil {
		return ErrContainerNotFound
	}
	b.MountContainer(container)
	return nil
}

// MountContainer adopts container directly.
func (b *Board) MountContainer(container *html.Node) {
	b.mu.Lock()
	b.container = container
	b.mu.Unlock()
}

// Root returns the top of the tree holding the container, or nil when the
// board is not mounted.
func (b *Board) Root() *html.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.container == nil {
		return nil
	}
	root := b.container
	for root.Parent != nil {
		root = root.Parent
	}
	return root
}

// EnsureMounted gives an unmounted board a detached container and renders it
// at now. Mounted boards are left alone.
func (b *Board) EnsureMounted(now time.Time) {
	b.mu.Lock()
	mounted := b.container != nil
	if !mounted {
		b.container = dom.Element("div", "id", ContainerID)
	}
	b.mu.Unlock()
	if !mounted {
		b.Render(now)
	}
}

// Mounted reports whether the board has a container.
func (b *Board) Mounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.container != nil
}

// Zones returns a copy of the captured zone list.
func (b *Board) Zones() []string {
	return append([]string{}, b.zones...)
}

// Render clears the container and builds one column per zone in order.
func (b *Board) Render(now time.Time) {
	columns := clock.BuildColumns(now, b.zones, b.formatter)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.container == nil {
		return
	}
	dom.Clear(b.container)
	for _, column := range columns {
		b.container.AppendChild(columnElement(column))
	}
}

// Refresh rewrites the time and abbreviation of the mounted columns in place.
// It never adds, removes or reorders columns and returns the number updated.
func (b *Board) Refresh(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.container == nil {
		return 0
	}

	updated := 0
	for _, column := range dom.QueryClass(b.container, ColumnClass) {
		zone, ok := dom.Attr(column, TimezoneAttr)
		if !ok || zone == "" {
			continue
		}
		if el := dom.FirstClass(column, TimeClass); el != nil {
			dom.SetText(el, b.formatter.Time(now, zone).TimeText())
			dom.SetAttr(el, DatetimeAttr, clock.Datetime(now))
		}
		if el := dom.FirstClass(column, TimezoneClass); el != nil {
			dom.SetText(el, b.formatter.Abbreviation(now, zone).AbbreviationText())
		}
		updated++
	}
	return updated
}

// Snapshot reads the mounted columns back from the DOM.
func (b *Board) Snapshot() []Mounted {
	b.mu.Lock()
	defer b.mu.Unlock()
	return readColumns(b.container)
}

// View runs fn while holding the board lock so the DOM can be serialized
// without racing a refresh.
func (b *Board) View(fn func(container *html.Node) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fn(b.container)
}

func columnElement(c clock.Column) *html.Node {
	column := dom.Element("div", "class", columnClassList, TimezoneAttr, c.Timezone)

	timeEl := dom.Element("time", "class", timeClassList, DatetimeAttr, c.Datetime())
	dom.SetText(timeEl, c.TimeText())

	cityEl := dom.Element("div", "class", cityClassList)
	dom.SetText(cityEl, c.City)

	tzEl := dom.Element("div", "class", timezoneClassList)
	dom.SetText(tzEl, c.AbbreviationText())

	dom.Append(column, timeEl, cityEl, tzEl)
	return column
}
