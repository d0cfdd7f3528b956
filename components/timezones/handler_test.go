package timezones

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-worldclock/pkg/clock"
)

var (
	summer = time.Date(2024, time.July, 1, 12, 5, 0, 0, time.UTC)
	winter = time.Date(2024, time.January, 15, 12, 5, 0, 0, time.UTC)
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func get(t *testing.T, h http.Handler, target string) handlerResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: expected status 200, got %d", target, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("GET %s: expected JSON content-type, got %q", target, ct)
	}
	var payload handlerResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("GET %s: decode: %v", target, err)
	}
	return payload
}

func TestHandler_RegionSearchAndAbbreviation(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"Asia/Kathmandu", "Asia/Kolkata", "Asia/Tokyo", "Europe/London"}),
		WithFormatter(clock.NewFormatter()),
		WithClock(clock.Fixed(winter)),
	)

	got := get(t, h, "/api/timezones?region=asia&q=k").Data
	want := []Option{
		{Value: "Asia/Kathmandu", Label: "Kathmandu (Asia/Kathmandu)", City: "Kathmandu", Abbreviation: "GMT+5:45"},
		{Value: "Asia/Kolkata", Label: "Kolkata (Asia/Kolkata)", City: "Kolkata", Abbreviation: "IST"},
		{Value: "Asia/Tokyo", Label: "Tokyo (Asia/Tokyo)", City: "Tokyo", Abbreviation: "JST"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_AbbreviationFollowsFormatterStyleAndInstant(t *testing.T) {
	zones := WithZones([]string{"America/New_York", "Europe/London"})
	top := WithEmptySearchMode(EmptySearchTop)

	cases := []struct {
		name  string
		style clock.AbbrevStyle
		at    time.Time
		want  map[string]string
	}{
		{"zone summer", clock.AbbrevZone, summer, map[string]string{"America/New_York": "EDT", "Europe/London": "BST"}},
		{"zone winter", clock.AbbrevZone, winter, map[string]string{"America/New_York": "EST", "Europe/London": "GMT"}},
		{"short summer", clock.AbbrevShort, summer, map[string]string{"America/New_York": "EDT", "Europe/London": "GMT+1"}},
		{"offset winter", clock.AbbrevOffset, winter, map[string]string{"America/New_York": "GMT-5", "Europe/London": "GMT"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHandler(zones, top,
				WithFormatter(clock.NewFormatter(clock.WithAbbrevStyle(tc.style))),
				WithClock(clock.Fixed(tc.at)),
			)
			got := map[string]string{}
			for _, opt := range get(t, h, "/api/timezones").Data {
				got[opt.Value] = opt.Abbreviation
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("abbreviations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandler_UnresolvableZoneHasNoAbbreviation(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"Not/ARealZone"}),
		WithFormatter(clock.NewFormatter()),
		WithClock(clock.Fixed(summer)),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/timezones?q=areal", nil))
	if body := rec.Body.String(); strings.Contains(body, "abbreviation") || !strings.Contains(body, `"city":"ARealZone"`) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestHandler_WithoutFormatterOmitsAbbreviation(t *testing.T) {
	h := NewHandler(WithZones([]string{"Asia/Tokyo"}))

	got := get(t, h, "/api/timezones?q=tokyo").Data
	if diff := cmp.Diff([]Option{{Value: "Asia/Tokyo", Label: "Tokyo (Asia/Tokyo)", City: "Tokyo"}}, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_EmptyResultsEncodeAsArray(t *testing.T) {
	h := NewHandler(WithZones([]string{"UTC", "Asia/Tokyo"}))

	for _, target := range []string{
		"/api/timezones",
		"/api/timezones?q=tokyo&limit=-1",
		"/api/timezones?region=europe&q=tokyo",
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if body := strings.TrimSpace(rec.Body.String()); body != `{"data":[]}` {
			t.Fatalf("GET %s: unexpected body %s", target, body)
		}
	}
}

func TestHandler_CustomParamsAndLimitClamp(t *testing.T) {
	h := NewHandler(
		WithZones([]string{"America/Chicago", "America/New_York", "America/Los_Angeles", "Europe/Paris"}),
		WithSearchParam("city"),
		WithLimitParam("n"),
		WithRegionParam("area"),
		WithMaxLimit(2),
	)

	got := get(t, h, "/api/timezones?area=america&city=a&n=10").Data
	labels := make([]string, 0, len(got))
	for _, opt := range got {
		labels = append(labels, opt.Label)
	}
	want := []string{"Chicago (America/Chicago)", "Los Angeles (America/Los_Angeles)"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_MethodsAndGuard(t *testing.T) {
	h := NewHandler(WithZones([]string{"UTC"}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/timezones", nil))
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != "GET, HEAD" {
		t.Fatalf("POST: got %d with Allow %q", rec.Code, rec.Header().Get("Allow"))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/api/timezones?q=utc", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("HEAD: got %d with %d body bytes", rec.Code, rec.Body.Len())
	}

	guarded := NewHandler(
		WithZones([]string{"UTC"}),
		WithGuard(func(*http.Request) error { return StatusError{Code: http.StatusUnauthorized} }),
	)
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/timezones?q=utc", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("guard: expected status 401, got %d", rec.Code)
	}
}
