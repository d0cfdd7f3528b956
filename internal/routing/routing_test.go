package routing

import "testing"

func TestJoin(t *testing.T) {
	cases := []struct {
		base, route, want string
	}{
		{"", "", "/"},
		{"/", "/", "/"},
		{"", "/clock", "/clock"},
		{"/", "clock/", "/clock"},
		{"admin", "", "/admin"},
		{" /admin/ ", " api/timezones ", "/admin/api/timezones"},
		{"/widgets", "/world/", "/widgets/world"},
	}
	for _, tc := range cases {
		if got := Join(tc.base, tc.route); got != tc.want {
			t.Fatalf("Join(%q, %q) = %q, want %q", tc.base, tc.route, got, tc.want)
		}
	}
}
