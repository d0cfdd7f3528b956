package board

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-worldclock/pkg/clock"
	"github.com/goliatone/go-worldclock/pkg/dom"
)

const hostPage = `<!DOCTYPE html><html><head></head><body><div id="clock-row"><p>stale</p></div></body></html>`

var (
	hhmm   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	summer = time.Date(2024, time.July, 1, 12, 5, 0, 0, time.UTC)
)

func mountBoard(t *testing.T, zones []string) (*Board, *html.Node) {
	t.Helper()
	doc, err := dom.ParseString(hostPage)
	if err != nil {
		t.Fatalf("parse host page: %v", err)
	}
	b := New(zones)
	if err := b.Mount(doc); err != nil {
		t.Fatalf("mount: %v", err)
	}
	return b, doc
}

func TestMount_MissingContainer(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="elsewhere"></div></body></html>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := New([]string{"UTC"}).Mount(doc); !errors.Is(err, ErrContainerNotFound) {
		t.Fatalf("expected ErrContainerNotFound, got %v", err)
	}
}

func TestRender_ScenarioLondonTokyo(t *testing.T) {
	b, doc := mountBoard(t, clock.ParseCities("Europe/London,Asia/Tokyo"))
	b.Render(summer)

	got := b.Snapshot()
	want := []Mounted{
		{Timezone: "Europe/London", City: "London", Time: "13:05", Abbreviation: "BST", Datetime: "2024-07-01T12:05:00.000Z"},
		{Timezone: "Asia/Tokyo", City: "Tokyo", Time: "21:05", Abbreviation: "JST", Datetime: "2024-07-01T12:05:00.000Z"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	row := dom.ByID(doc, ContainerID)
	if strings.Contains(dom.Text(row), "stale") {
		t.Fatalf("expected prior content to be cleared")
	}
	for _, m := range got {
		if !hhmm.MatchString(m.Time) || m.Abbreviation == "" {
			t.Fatalf("implausible column: %#v", m)
		}
	}
}

func TestRender_MarkupContract(t *testing.T) {
	b, doc := mountBoard(t, []string{"America/New_York"})
	b.Render(summer)

	out, err := dom.RenderString(dom.ByID(doc, ContainerID))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div id="clock-row"><div class="clock-column block gap-s" data-timezone="America/New_York">` +
		`<time class="clock-time font-3xl" datetime="2024-07-01T12:05:00.000Z">08:05</time>` +
		`<div class="clock-city font-m">New York</div>` +
		`<div class="clock-timezone font-xs">EDT</div></div></div>`
	if out != want {
		t.Fatalf("markup mismatch\nwant: %s\n got: %s", want, out)
	}
}

func TestRender_DefaultAndCountProperties(t *testing.T) {
	cases := map[string]int{
		"":                         1,
		" , ":                      1,
		"UTC":                      1,
		"UTC, Asia/Tokyo ,,UTC":    3,
		"A/B,C/D,E/F,G/H,Not/Real": 5,
	}
	for raw, want := range cases {
		b, _ := mountBoard(t, clock.ParseCities(raw))
		b.Render(summer)
		got := b.Snapshot()
		if len(got) != want {
			t.Fatalf("cities=%q: expected %d columns, got %d", raw, want, len(got))
		}
		if raw == "" && got[0].Timezone != clock.DefaultTimezone {
			t.Fatalf("expected default zone, got %q", got[0].Timezone)
		}
	}
}

func TestRender_InvalidZoneDegradesColumn(t *testing.T) {
	b, _ := mountBoard(t, clock.ParseCities("Not/ARealZone"))
	b.Render(summer)

	want := []Mounted{{
		Timezone: "Not/ARealZone",
		City:     "ARealZone",
		Time:     clock.TimePlaceholder,
		Datetime: "2024-07-01T12:05:00.000Z",
	}}
	if diff := cmp.Diff(want, b.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ReplacesPreviousColumns(t *testing.T) {
	b, _ := mountBoard(t, []string{"UTC", "Asia/Tokyo"})
	b.Render(summer)
	b.Render(summer.Add(time.Hour))

	got := b.Snapshot()
	if len(got) != 2 || got[0].Time != "13:05" {
		t.Fatalf("unexpected snapshot after re-render: %#v", got)
	}
}

func TestRefresh_UpdatesTextOnly(t *testing.T) {
	b, doc := mountBoard(t, []string{"Europe/London", "Not/ARealZone", "Asia/Tokyo"})
	b.Render(summer)

	row := dom.ByID(doc, ContainerID)
	before := dom.QueryClass(row, ColumnClass)

	later := time.Date(2024, time.December, 1, 18, 30, 0, 0, time.UTC)
	if n := b.Refresh(later); n != 3 {
		t.Fatalf("expected 3 columns refreshed, got %d", n)
	}

	after := dom.QueryClass(row, ColumnClass)
	if len(after) != len(before) {
		t.Fatalf("column count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("column %d was replaced", i)
		}
	}

	want := []Mounted{
		{Timezone: "Europe/London", City: "London", Time: "18:30", Abbreviation: "GMT", Datetime: "2024-12-01T18:30:00.000Z"},
		{Timezone: "Not/ARealZone", City: "ARealZone", Time: "--:--", Abbreviation: "", Datetime: "2024-12-01T18:30:00.000Z"},
		{Timezone: "Asia/Tokyo", City: "Tokyo", Time: "03:30", Abbreviation: "JST", Datetime: "2024-12-01T18:30:00.000Z"},
	}
	if diff := cmp.Diff(want, b.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	first := b.Snapshot()
	b.Refresh(later)
	if diff := cmp.Diff(first, b.Snapshot()); diff != "" {
		t.Fatalf("refresh is not idempotent (-first +second):\n%s", diff)
	}
}

func TestRefresh_EmptyOrUnmountedIsNoop(t *testing.T) {
	if n := New([]string{"UTC"}).Refresh(summer); n != 0 {
		t.Fatalf("expected unmounted refresh to be a no-op, got %d", n)
	}

	b, doc := mountBoard(t, []string{"UTC"})
	dom.Clear(dom.ByID(doc, ContainerID))
	if n := b.Refresh(summer); n != 0 {
		t.Fatalf("expected empty container refresh to be a no-op, got %d", n)
	}
}

func TestZones_IsCopied(t *testing.T) {
	zones := []string{"UTC"}
	b := New(zones)
	zones[0] = "Asia/Tokyo"
	got := b.Zones()
	got[0] = "Europe/Paris"
	if b.Zones()[0] != "UTC" {
		t.Fatalf("board zones leaked: %#v", b.Zones())
	}
}

func TestEnsureMounted(t *testing.T) {
	b := New([]string{"Asia/Tokyo"})
	if b.Mounted() {
		t.Fatal("new board should not be mounted")
	}

	b.EnsureMounted(summer)
	if !b.Mounted() {
		t.Fatal("expected a detached container")
	}
	got := b.Snapshot()
	if len(got) != 1 || got[0].Time != "21:05" || got[0].Abbreviation != "JST" {
		t.Fatalf("unexpected snapshot %#v", got)
	}

	mounted, doc := mountBoard(t, []string{"Europe/London"})
	mounted.EnsureMounted(summer)
	if root := mounted.Root(); root != doc {
		t.Fatal("EnsureMounted replaced an existing container")
	}
	if cols := mounted.Snapshot(); len(cols) != 0 {
		t.Fatalf("EnsureMounted rendered a mounted board: %#v", cols)
	}
}
