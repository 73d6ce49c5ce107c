package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/newsdeck/newsdeck/internal/api"
)

type tab int

const (
	tabFeeds tab = iota
	tabSites
)

// defaultCategory mirrors the server's default when none is supplied.
const defaultCategory = "AI Models"

// sourceRow is one registry entry as rendered in the modal. Feeds and
// sites share the shape; query is only set for sites.
type sourceRow struct {
	id       int64
	name     string
	url      string
	query    string
	category string
}

// registryState is the per-registry load/delete state. The feed and
// site registries are two independent instances of it.
type registryState struct {
	loading    bool
	err        error
	rows       []sourceRow
	cursor     int
	deletingID int64 // nonzero while a delete for that id is in flight
}

func (r *registryState) clampCursor() {
	if r.cursor >= len(r.rows) {
		r.cursor = len(r.rows) - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}
}

// modalState owns the add-source modal: visibility, the active tab and
// both registry controllers' transient state.
type modalState struct {
	open   bool
	tab    tab
	width  int
	height int

	feeds registryState
	sites registryState

	feedURL      textinput.Model
	feedName     textinput.Model
	feedCategory textinput.Model
	feedFocus    int

	siteURL      textinput.Model
	siteName     textinput.Model
	siteQuery    textinput.Model
	siteCategory textinput.Model
	siteFocus    int

	feedStatus      string
	feedStatusIsErr bool
	siteStatus      string
	siteStatusIsErr bool

	submittingFeed bool
	submittingSite bool
	checkingFeed   bool
}

func newModalState() modalState {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 300
		return ti
	}

	return modalState{
		feedURL:      newInput("https://example.org/feed.xml"),
		feedName:     newInput("Name (optional, auto-detected)"),
		feedCategory: newInput(defaultCategory),
		siteURL:      newInput("https://example.org"),
		siteName:     newInput("Name (optional)"),
		siteQuery:    newInput("Search query (optional)"),
		siteCategory: newInput(defaultCategory),
	}
}

func (m *modalState) resize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width/2 - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	for _, ti := range m.allInputs() {
		ti.Width = inputWidth
	}
}

func (m *modalState) allInputs() []*textinput.Model {
	return []*textinput.Model{
		&m.feedURL, &m.feedName, &m.feedCategory,
		&m.siteURL, &m.siteName, &m.siteQuery, &m.siteCategory,
	}
}

func (m *modalState) activeFields() []*textinput.Model {
	if m.tab == tabSites {
		return []*textinput.Model{&m.siteURL, &m.siteName, &m.siteQuery, &m.siteCategory}
	}
	return []*textinput.Model{&m.feedURL, &m.feedName, &m.feedCategory}
}

func (m *modalState) activeFocus() *int {
	if m.tab == tabSites {
		return &m.siteFocus
	}
	return &m.feedFocus
}

func (m *modalState) activeRegistry() *registryState {
	if m.tab == tabSites {
		return &m.sites
	}
	return &m.feeds
}

func (m *modalState) refocus() {
	fields := m.activeFields()
	focus := *m.activeFocus()
	for i, ti := range fields {
		if i == focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
	// Blur everything on the hidden tab without touching its values
	for _, ti := range m.allInputs() {
		active := false
		for _, f := range fields {
			if ti == f {
				active = true
				break
			}
		}
		if !active {
			ti.Blur()
		}
	}
}

func (m *modalState) anyBusy() bool {
	return m.submittingFeed || m.submittingSite || m.checkingFeed ||
		m.feeds.deletingID != 0 || m.sites.deletingID != 0
}

// openModal resets all transient modal state and kicks off the initial
// load of both registries, so switching tabs never shows a stale
// loading placeholder.
func (a *App) openModal() []tea.Cmd {
	m := &a.modal
	m.open = true
	m.tab = tabFeeds
	m.feedFocus = 0
	m.siteFocus = 0

	for _, ti := range m.allInputs() {
		ti.SetValue("")
	}
	m.feedStatus = ""
	m.feedStatusIsErr = false
	m.siteStatus = ""
	m.siteStatusIsErr = false

	m.feeds = registryState{loading: true}
	m.sites = registryState{loading: true}
	m.refocus()

	return []tea.Cmd{a.listFeeds(), a.listSites(), textinput.Blink}
}

func (a *App) closeModal() {
	a.modal.open = false
	for _, ti := range a.modal.allInputs() {
		ti.Blur()
	}
}

func (a *App) handleModalKey(msg tea.KeyMsg) []tea.Cmd {
	m := &a.modal

	switch msg.String() {
	case "esc":
		a.closeModal()
		return nil

	case a.cfg.Keys.SwitchTab, "tab":
		// Pure UI transition: no reloads, no field resets.
		if m.tab == tabFeeds {
			m.tab = tabSites
		} else {
			m.tab = tabFeeds
		}
		m.refocus()
		return nil

	case "up":
		reg := m.activeRegistry()
		if reg.cursor > 0 {
			reg.cursor--
		}
		return nil

	case "down":
		reg := m.activeRegistry()
		if reg.cursor < len(reg.rows)-1 {
			reg.cursor++
		}
		return nil

	case "enter":
		fields := m.activeFields()
		focus := m.activeFocus()
		if *focus < len(fields)-1 {
			*focus++
			m.refocus()
			return nil
		}
		return a.submitActiveForm()

	case "ctrl+s":
		return a.submitActiveForm()

	case "ctrl+p":
		if m.tab == tabFeeds {
			return a.checkFeedForm()
		}
		return nil

	case "ctrl+x":
		return a.deleteSelectedRow()
	}

	// Everything else goes to the focused input
	fields := m.activeFields()
	focus := *m.activeFocus()
	if focus >= 0 && focus < len(fields) {
		var cmd tea.Cmd
		*fields[focus], cmd = fields[focus].Update(msg)
		return []tea.Cmd{cmd}
	}
	return nil
}

func (a *App) submitActiveForm() []tea.Cmd {
	if a.modal.tab == tabSites {
		return a.submitSiteForm()
	}
	return a.submitFeedForm()
}

func (a *App) submitFeedForm() []tea.Cmd {
	m := &a.modal
	if m.submittingFeed {
		return nil
	}

	// Local validation happens before any network call
	normalized, err := a.urlValidator.ValidateAndNormalize(m.feedURL.Value())
	if err != nil {
		m.feedStatus = err.Error()
		m.feedStatusIsErr = true
		return nil
	}

	m.submittingFeed = true
	m.feedStatus = MsgAddingFeed
	m.feedStatusIsErr = false

	req := api.AddFeedRequest{
		URL:      normalized,
		Name:     strings.TrimSpace(m.feedName.Value()),
		Category: categoryOrDefault(m.feedCategory.Value()),
	}
	return []tea.Cmd{a.submitFeed(req), a.spinner.Tick}
}

func (a *App) submitSiteForm() []tea.Cmd {
	m := &a.modal
	if m.submittingSite {
		return nil
	}

	normalized, err := a.urlValidator.ValidateAndNormalize(m.siteURL.Value())
	if err != nil {
		m.siteStatus = err.Error()
		m.siteStatusIsErr = true
		return nil
	}

	m.submittingSite = true
	m.siteStatus = MsgAddingSite
	m.siteStatusIsErr = false

	req := api.AddSiteRequest{
		URL:      normalized,
		Name:     strings.TrimSpace(m.siteName.Value()),
		Query:    strings.TrimSpace(m.siteQuery.Value()),
		Category: categoryOrDefault(m.siteCategory.Value()),
	}
	return []tea.Cmd{a.submitSite(req), a.spinner.Tick}
}

// checkFeedForm validates the candidate URL against the server without
// registering it. Advisory only; submit never requires a prior check.
func (a *App) checkFeedForm() []tea.Cmd {
	m := &a.modal
	if m.checkingFeed {
		return nil
	}

	normalized, err := a.urlValidator.ValidateAndNormalize(m.feedURL.Value())
	if err != nil {
		m.feedStatus = err.Error()
		m.feedStatusIsErr = true
		return nil
	}

	m.checkingFeed = true
	m.feedStatus = MsgChecking
	m.feedStatusIsErr = false
	return []tea.Cmd{a.checkFeedURL(normalized), a.spinner.Tick}
}

func (a *App) deleteSelectedRow() []tea.Cmd {
	m := &a.modal
	reg := m.activeRegistry()
	if reg.deletingID != 0 || len(reg.rows) == 0 {
		return nil
	}
	reg.clampCursor()
	row := reg.rows[reg.cursor]
	reg.deletingID = row.id

	if m.tab == tabSites {
		return []tea.Cmd{a.deleteSite(row.id), a.spinner.Tick}
	}
	return []tea.Cmd{a.deleteFeed(row.id), a.spinner.Tick}
}

// updateModal handles registry and form outcome messages. Busy flags
// are cleared on every path so the controls never stay stuck disabled.
func (a *App) updateModal(msg tea.Msg) []tea.Cmd {
	m := &a.modal
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case feedsListedMsg:
		m.feeds.loading = false
		m.feeds.err = msg.err
		if msg.err == nil {
			m.feeds.rows = msg.rows
			m.feeds.clampCursor()
		}

	case sitesListedMsg:
		m.sites.loading = false
		m.sites.err = msg.err
		if msg.err == nil {
			m.sites.rows = msg.rows
			m.sites.clampCursor()
		}

	case feedAddedMsg:
		m.submittingFeed = false
		if msg.err != nil {
			// Server text verbatim; fields stay intact for correction
			m.feedStatus = msg.err.Error()
			m.feedStatusIsErr = true
			break
		}
		m.feedURL.SetValue("")
		m.feedName.SetValue("")
		m.feedCategory.SetValue("")
		m.feedStatus = MsgAddedSource(msg.result.Name, msg.result.Fetched)
		m.feedStatusIsErr = false
		m.feeds.loading = true
		cmds = append(cmds, a.listFeeds(), a.issueLoad(a.keyword))

	case siteAddedMsg:
		m.submittingSite = false
		if msg.err != nil {
			m.siteStatus = msg.err.Error()
			m.siteStatusIsErr = true
			break
		}
		m.siteURL.SetValue("")
		m.siteName.SetValue("")
		m.siteQuery.SetValue("")
		m.siteCategory.SetValue("")
		m.siteStatus = MsgAddedSource(msg.result.Name, msg.result.Fetched)
		m.siteStatusIsErr = false
		m.sites.loading = true
		cmds = append(cmds, a.listSites(), a.issueLoad(a.keyword))

	case feedDeletedMsg:
		m.feeds.deletingID = 0
		if msg.err != nil {
			m.feedStatus = msg.err.Error()
			m.feedStatusIsErr = true
		}
		// Reload unconditionally: the server list is the source of
		// truth and a removed source's articles must leave the feed.
		m.feeds.loading = true
		cmds = append(cmds, a.listFeeds(), a.issueLoad(a.keyword))

	case siteDeletedMsg:
		m.sites.deletingID = 0
		if msg.err != nil {
			m.siteStatus = msg.err.Error()
			m.siteStatusIsErr = true
		}
		m.sites.loading = true
		cmds = append(cmds, a.listSites(), a.issueLoad(a.keyword))

	case feedCheckedMsg:
		m.checkingFeed = false
		if msg.err != nil {
			m.feedStatus = msg.err.Error()
			m.feedStatusIsErr = true
			break
		}
		m.feedStatus = MsgFeedOK(msg.preview.Title, msg.preview.EntryCount)
		m.feedStatusIsErr = false
		// Auto-fill the name only when the user hasn't typed one
		if strings.TrimSpace(m.feedName.Value()) == "" && msg.preview.Title != "" {
			m.feedName.SetValue(msg.preview.Title)
		}
	}

	return cmds
}

func categoryOrDefault(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultCategory
	}
	return s
}
