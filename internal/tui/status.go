package tui

import (
	"fmt"
	"strings"
	"time"
)

// Canonical short status messages used across the app.
const (
	MsgRefreshing   = "Refreshing…"
	MsgChecking     = "Checking feed…"
	MsgAddingFeed   = "Adding feed…"
	MsgAddingSite   = "Adding site…"
	MsgDeleting     = "Deleting…"
	MsgLoading      = "Loading…"
	MsgNotFetched   = "Not fetched yet"
	MsgStatusFailed = "Status unavailable"
)

// countLabel is the article counter shown next to the list. Singular
// only for exactly one article.
func countLabel(n int) string {
	if n == 1 {
		return "1 article"
	}
	return fmt.Sprintf("%d articles", n)
}

func MsgAddedSource(name string, fetched int) string {
	return fmt.Sprintf("Added '%s' (%d articles)", strings.TrimSpace(name), fetched)
}

func MsgFeedOK(title string, entries int) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Sprintf("Feed OK · %d entries", entries)
	}
	return fmt.Sprintf("Feed OK: %s · %d entries", title, entries)
}

func MsgRefreshed(fetched int) string {
	return fmt.Sprintf("Refreshed · %d new articles", fetched)
}

func MsgRefreshFailed(reason string) string {
	return "Refresh failed: " + reason
}

// serverTimeLayouts are the timestamp shapes the backend emits: sqlite
// CURRENT_TIMESTAMP and ISO-8601 with or without a zone.
var serverTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseServerTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range serverTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatSyncStatus renders the status line for a fetched SyncStatus.
// Unparseable timestamps fall back to the raw server string rather than
// hiding that a fetch happened.
func formatSyncStatus(lastFetched string, total int) string {
	if lastFetched == "" {
		return MsgNotFetched
	}

	rendered := lastFetched
	if t, ok := parseServerTime(lastFetched); ok {
		rendered = t.Local().Format("Jan 2, 15:04")
	}

	if total > 0 {
		return fmt.Sprintf("Last fetched %s · %s total", rendered, countLabel(total))
	}
	return "Last fetched " + rendered
}

// formatPublished renders an article's published timestamp, or "" when
// absent or unparseable.
func formatPublished(published string) string {
	t, ok := parseServerTime(published)
	if !ok {
		return ""
	}
	return t.Local().Format("Jan 2, 2006")
}
