package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newsdeck/newsdeck/internal/api"
	"github.com/newsdeck/newsdeck/internal/browser"
	"github.com/newsdeck/newsdeck/internal/cache"
	"github.com/newsdeck/newsdeck/internal/debuglog"
)

// issueLoad bumps the load token and returns the command for a single
// article load. Must only be called from Update (single-threaded), so
// the token bump needs no synchronization.
func (a *App) issueLoad(keyword string) tea.Cmd {
	a.loadSeq++
	seq := a.loadSeq
	client := a.client
	return func() tea.Msg {
		articles, err := client.Articles(keyword)
		if err != nil {
			debuglog.Warnf("article load (seq %d, q=%q) failed: %v", seq, keyword, err)
		}
		return articlesLoadedMsg{seq: seq, keyword: keyword, articles: articles, err: err}
	}
}

// armDebounce bumps the search token and arms a fresh quiet-period
// timer. Earlier timers still fire but carry a dead token.
func (a *App) armDebounce() tea.Cmd {
	a.searchSeq++
	seq := a.searchSeq
	return tea.Tick(a.cfg.Dashboard.SearchDebounce, func(time.Time) tea.Msg {
		return searchDebouncedMsg{seq: seq}
	})
}

// startAutoRefresh (re)arms the recurring combined reload. Bumping the
// generation kills any previously armed ticker, so at most one is live.
func (a *App) startAutoRefresh() tea.Cmd {
	a.tickerGen++
	return a.scheduleTick(a.tickerGen)
}

func (a *App) scheduleTick(gen int) tea.Cmd {
	return tea.Tick(a.cfg.Dashboard.RefreshInterval, func(time.Time) tea.Msg {
		return autoRefreshTickMsg{gen: gen}
	})
}

func (a *App) fetchStatus() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		status, err := client.Status()
		return statusLoadedMsg{status: status, err: err}
	}
}

func (a *App) triggerRefresh() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		result, err := client.Refresh()
		return refreshDoneMsg{result: result, err: err}
	}
}

func (a *App) listFeeds() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		feeds, err := client.Feeds()
		if err != nil {
			return feedsListedMsg{err: err}
		}
		rows := make([]sourceRow, len(feeds))
		for i, f := range feeds {
			rows[i] = sourceRow{id: f.ID, name: f.Name, url: f.URL, category: f.Category}
		}
		return feedsListedMsg{rows: rows}
	}
}

func (a *App) listSites() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		sites, err := client.Sites()
		if err != nil {
			return sitesListedMsg{err: err}
		}
		rows := make([]sourceRow, len(sites))
		for i, s := range sites {
			rows[i] = sourceRow{id: s.ID, name: s.Name, url: s.URL, query: s.Query, category: s.Category}
		}
		return sitesListedMsg{rows: rows}
	}
}

func (a *App) submitFeed(req api.AddFeedRequest) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		result, err := client.AddFeed(req)
		return feedAddedMsg{result: result, err: err}
	}
}

func (a *App) submitSite(req api.AddSiteRequest) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		result, err := client.AddSite(req)
		return siteAddedMsg{result: result, err: err}
	}
}

func (a *App) deleteFeed(id int64) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		return feedDeletedMsg{id: id, err: client.DeleteFeed(id)}
	}
}

func (a *App) deleteSite(id int64) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		return siteDeletedMsg{id: id, err: client.DeleteSite(id)}
	}
}

func (a *App) checkFeedURL(url string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		preview, err := client.PreviewFeed(url)
		return feedCheckedMsg{preview: preview, err: err}
	}
}

func (a *App) loadCachedSnapshot() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		if store == nil {
			return cachedSnapshotMsg{}
		}
		snap, ok := store.Snapshot()
		return cachedSnapshotMsg{snap: snap, ok: ok}
	}
}

func (a *App) loadCachedStatus() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		if store == nil {
			return cachedStatusMsg{}
		}
		status, ok := store.Status()
		return cachedStatusMsg{status: status, ok: ok}
	}
}

// saveStatus persists the latest sync status alongside the snapshot.
func (a *App) saveStatus(status api.SyncStatus) tea.Cmd {
	store := a.store
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		if err := store.SaveStatus(status); err != nil {
			debuglog.Warnf("saving status: %v", err)
		}
		return nil
	}
}

// saveSnapshot persists an unfiltered live result for the next startup
// paint. Failures are logged, never surfaced.
func (a *App) saveSnapshot(articles []api.Article) tea.Cmd {
	store := a.store
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		err := store.SaveSnapshot(cache.Snapshot{
			Articles: articles,
			StoredAt: time.Now(),
		})
		if err != nil {
			debuglog.Warnf("saving snapshot: %v", err)
		}
		return nil
	}
}

func (a *App) openLink(url string) tea.Cmd {
	return func() tea.Msg {
		return linkOpenedMsg{err: browser.Open(url)}
	}
}

// renderReader produces the glamour-rendered detail view for an article.
func (a *App) renderReader(article api.Article) tea.Cmd {
	return func() tea.Msg {
		var content strings.Builder
		content.WriteString(fmt.Sprintf("# %s\n\n", article.Title))

		meta := article.Source
		if article.Category != "" {
			meta += " · " + article.Category
		}
		if published := formatPublished(article.Published); published != "" {
			meta += " · " + published
		}
		content.WriteString(fmt.Sprintf("*%s*\n\n", meta))

		if article.URL != "" {
			content.WriteString(fmt.Sprintf("[Read Online](%s)\n\n", article.URL))
		}

		content.WriteString("---\n\n")
		if article.Summary != "" {
			content.WriteString(article.Summary)
		} else {
			content.WriteString("*No summary available.*")
		}

		r, err := a.getRenderer()
		if err != nil {
			return readerRenderedMsg{content: "Error initializing renderer: " + err.Error()}
		}

		rendered, err := r.Render(content.String())
		if err != nil {
			return readerRenderedMsg{content: "Failed to render article: " + err.Error()}
		}
		return readerRenderedMsg{content: rendered}
	}
}
