package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "0 articles", countLabel(0))
	assert.Equal(t, "1 article", countLabel(1))
	assert.Equal(t, "2 articles", countLabel(2))
	assert.Equal(t, "42 articles", countLabel(42))
}

func TestParseServerTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"sqlite timestamp", "2026-08-30 14:05:09", true},
		{"rfc3339", "2026-08-30T14:05:09Z", true},
		{"iso without zone", "2026-08-30T14:05:09", true},
		{"surrounding whitespace", "  2026-08-30 14:05:09  ", true},
		{"empty", "", false},
		{"garbage", "yesterday-ish", false},
		{"date only", "2026-08-30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := parseServerTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, 2026, parsed.Year())
				assert.Equal(t, 30, parsed.Day())
			}
		})
	}
}

func TestFormatSyncStatus(t *testing.T) {
	assert.Equal(t, MsgNotFetched, formatSyncStatus("", 0))
	assert.Equal(t, MsgNotFetched, formatSyncStatus("", 120))

	withTotal := formatSyncStatus("2026-08-30 14:05:09", 120)
	assert.True(t, strings.HasPrefix(withTotal, "Last fetched "))
	assert.Contains(t, withTotal, "120 articles")

	withoutTotal := formatSyncStatus("2026-08-30 14:05:09", 0)
	assert.True(t, strings.HasPrefix(withoutTotal, "Last fetched "))
	assert.NotContains(t, withoutTotal, "total")

	// Unparseable timestamps are shown raw rather than swallowed.
	raw := formatSyncStatus("a while ago", 3)
	assert.Contains(t, raw, "a while ago")
}

func TestFormatPublished(t *testing.T) {
	assert.Equal(t, "", formatPublished(""))
	assert.Equal(t, "", formatPublished("not a date"))
	assert.NotEmpty(t, formatPublished("2026-08-30T14:05:09Z"))
}

func TestStatusMessages(t *testing.T) {
	assert.Equal(t, "Added 'HN Frontpage' (12 articles)", MsgAddedSource(" HN Frontpage ", 12))
	assert.Equal(t, "Feed OK: Example Blog · 8 entries", MsgFeedOK("Example Blog", 8))
	assert.Equal(t, "Feed OK · 8 entries", MsgFeedOK("  ", 8))
	assert.Equal(t, "Refreshed · 5 new articles", MsgRefreshed(5))
	assert.Equal(t, "Refresh failed: boom", MsgRefreshFailed("boom"))
}
