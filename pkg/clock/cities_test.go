package clock

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCities(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{DefaultTimezone}},
		{name: "only separators", raw: " , ,, ", want: []string{DefaultTimezone}},
		{name: "single", raw: "Asia/Tokyo", want: []string{"Asia/Tokyo"}},
		{name: "trims and drops empties", raw: " Europe/London , ,Asia/Tokyo,", want: []string{"Europe/London", "Asia/Tokyo"}},
		{name: "keeps duplicates and order", raw: "UTC,Asia/Tokyo,UTC", want: []string{"UTC", "Asia/Tokyo", "UTC"}},
		{name: "keeps invalid entries", raw: "Not/ARealZone", want: []string{"Not/ARealZone"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ParseCities(tc.raw)); diff != "" {
				t.Fatalf("ParseCities(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestParseCitiesWithDefault_BlankFallbackUsesDefault(t *testing.T) {
	if got := ParseCitiesWithDefault("", "  "); len(got) != 1 || got[0] != DefaultTimezone {
		t.Fatalf("unexpected fallback: %#v", got)
	}
	if got := ParseCitiesWithDefault("", "Asia/Tokyo"); len(got) != 1 || got[0] != "Asia/Tokyo" {
		t.Fatalf("unexpected fallback: %#v", got)
	}
}

func TestCitiesFromURL(t *testing.T) {
	u, err := url.Parse("https://example.com/embed?cities=Europe/London,%20America/New_York&x=1")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	want := []string{"Europe/London", "America/New_York"}
	if diff := cmp.Diff(want, CitiesFromURL(u)); diff != "" {
		t.Fatalf("CitiesFromURL mismatch (-want +got):\n%s", diff)
	}

	missing, _ := url.Parse("https://example.com/embed")
	if diff := cmp.Diff([]string{DefaultTimezone}, CitiesFromURL(missing)); diff != "" {
		t.Fatalf("missing param mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{DefaultTimezone}, CitiesFromURL(nil)); diff != "" {
		t.Fatalf("nil url mismatch (-want +got):\n%s", diff)
	}
}

func TestCityName(t *testing.T) {
	cases := map[string]string{
		"America/New_York":               "New York",
		"Europe/London":                  "London",
		"America/Argentina/Buenos_Aires": "Buenos Aires",
		"UTC":                            "UTC",
		"Not/ARealZone":                  "ARealZone",
		"Region/City_Name":               "City Name",
		"Trailing/":                      "",
	}
	for zone, want := range cases {
		if got := CityName(zone); got != want {
			t.Fatalf("CityName(%q) = %q, want %q", zone, got, want)
		}
	}
}

func TestRegion(t *testing.T) {
	if got := Region("America/Argentina/Buenos_Aires"); got != "America/Argentina" {
		t.Fatalf("unexpected region: %q", got)
	}
	if got := Region("UTC"); got != "" {
		t.Fatalf("expected empty region, got %q", got)
	}
}
