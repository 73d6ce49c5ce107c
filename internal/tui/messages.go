package tui

import (
	"github.com/newsdeck/newsdeck/internal/api"
	"github.com/newsdeck/newsdeck/internal/cache"
)

// articlesLoadedMsg carries one load's outcome together with the token
// it was issued under. Results whose token is no longer the latest are
// discarded, so a slow stale response can never overwrite a newer render.
type articlesLoadedMsg struct {
	seq      int
	keyword  string
	articles []api.Article
	err      error
}

type statusLoadedMsg struct {
	status api.SyncStatus
	err    error
}

type refreshDoneMsg struct {
	result api.RefreshResult
	err    error
}

// searchDebouncedMsg fires when a debounce timer survives its quiet
// period; only the timer matching the current token triggers a load.
type searchDebouncedMsg struct {
	seq int
}

// autoRefreshTickMsg is the recurring combined-reload tick. Ticks from
// an older generation are dead timers and are ignored.
type autoRefreshTickMsg struct {
	gen int
}

type feedsListedMsg struct {
	rows []sourceRow
	err  error
}

type sitesListedMsg struct {
	rows []sourceRow
	err  error
}

type feedAddedMsg struct {
	result api.AddResult
	err    error
}

type siteAddedMsg struct {
	result api.AddResult
	err    error
}

type feedDeletedMsg struct {
	id  int64
	err error
}

type siteDeletedMsg struct {
	id  int64
	err error
}

type feedCheckedMsg struct {
	preview api.FeedPreview
	err     error
}

type readerRenderedMsg struct {
	content string
}

type cachedSnapshotMsg struct {
	snap cache.Snapshot
	ok   bool
}

type cachedStatusMsg struct {
	status api.SyncStatus
	ok     bool
}

type linkOpenedMsg struct {
	err error
}
