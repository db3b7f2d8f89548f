package shields

import "testing"

func TestEscape(t *testing.T) {
	cases := map[string]string{
		"backers":       "backers",
		"gold sponsors": "gold_sponsors",
		"semi-annual":   "semi--annual",
		"open_source":   "open__source",
	}
	for in, want := range cases {
		if got := Escape(in); got != want {
			t.Errorf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBadgeURL(t *testing.T) {
	got := BadgeURL("", "backers", "1,024", "brightgreen", "flat")
	want := "https://img.shields.io/badge/backers-1,024-brightgreen.svg?style=flat"
	if got != want {
		t.Errorf("BadgeURL() = %q, want %q", got, want)
	}
}

func TestBadgeURLNoStyle(t *testing.T) {
	got := BadgeURL("https://shields.internal/", "gold sponsors", "3", "blue", "")
	want := "https://shields.internal/badge/gold_sponsors-3-blue.svg"
	if got != want {
		t.Errorf("BadgeURL() = %q, want %q", got, want)
	}
}
