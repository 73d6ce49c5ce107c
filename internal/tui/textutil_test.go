package tui

import (
	"strings"
	"testing"
)

func TestSummaryExcerpt(t *testing.T) {
	long := strings.Repeat("a", 301)

	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"empty", "", 300, ""},
		{"short unchanged", "hello", 300, "hello"},
		{"exactly at limit unchanged", strings.Repeat("a", 300), 300, strings.Repeat("a", 300)},
		{"one over limit", long, 300, strings.Repeat("a", 300) + "…"},
		{"zero limit", "hello", 0, ""},
		{"multibyte runes", "héllo wörld", 5, "héllo…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summaryExcerpt(tt.input, tt.limit); got != tt.want {
				t.Errorf("summaryExcerpt(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact fit", "exact", 5, "exact"},
		{"truncated with ellipsis", "truncate me", 8, "truncat…"},
		{"limit one", "long", 1, "…"},
		{"zero limit", "anything", 0, ""},
		{"negative limit", "anything", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateEnd(tt.input, tt.limit); got != tt.want {
				t.Errorf("truncateEnd(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"fits", "https://x.org", 20, "https://x.org"},
		{"keeps both ends", "https://example.org/feeds/atom.xml", 15, "https:/…tom.xml"},
		{"limit one", "abcdef", 1, "…"},
		{"zero limit", "abcdef", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateMiddle(tt.input, tt.limit)
			if got != tt.want {
				t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
			if len([]rune(got)) > tt.limit && tt.limit > 0 {
				t.Errorf("result %q exceeds limit %d", got, tt.limit)
			}
		})
	}
}
