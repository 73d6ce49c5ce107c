package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/newsdeck/newsdeck/internal/api"
	"github.com/newsdeck/newsdeck/internal/cache"
	"github.com/newsdeck/newsdeck/internal/config"
	"github.com/newsdeck/newsdeck/internal/validation"
)

type View int

const (
	ViewDashboard View = iota
	ViewReader
)

// App is the dashboard controller. All UI state lives here and is only
// touched from Update; network calls run as commands and report back as
// messages, so the coordination model is single-threaded throughout.
type App struct {
	cfg          *config.Config
	client       *api.Client
	store        *cache.Cache // nil when the snapshot cache is unavailable
	urlValidator *validation.SourceURLValidator

	searchInput textinput.Model
	spinner     spinner.Model
	viewport    viewport.Model

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int

	view   View
	width  int
	height int

	// Article feed state. articles and countText are always written
	// together from the same response.
	articles   []api.Article
	countText  string
	feedErr    error
	fromCache  bool
	liveLoaded bool
	liveStatus bool
	keyword    string
	cursor     int

	currentArticle *api.Article
	readerContent  string
	loadingArticle bool

	// Tokens for overlapping async operations; see messages.go.
	loadSeq   int
	searchSeq int
	tickerGen int

	statusText string
	notice     string

	refreshing bool

	modal modalState
}

func NewApp(client *api.Client, store *cache.Cache, cfg *config.Config) *App {
	si := textinput.New()
	si.Placeholder = "Search articles..."
	si.Prompt = "/ "
	si.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = SelectedStyle

	vp := viewport.New(0, 0)

	return &App{
		cfg:          cfg,
		client:       client,
		store:        store,
		urlValidator: validation.NewSourceURLValidator(),
		searchInput:  si,
		spinner:      sp,
		viewport:     vp,
		view:         ViewDashboard,
		statusText:   MsgLoading,
		modal:        newModalState(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadCachedSnapshot(),
		a.loadCachedStatus(),
		a.issueLoad(""),
		a.fetchStatus(),
		a.startAutoRefresh(),
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 3
		inputWidth := msg.Width - 8
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth
		a.modal.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.anyBusy() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case articlesLoadedMsg:
		if msg.seq != a.loadSeq {
			// A newer load was issued after this one; its response,
			// whenever it lands, is the authoritative one.
			break
		}
		if msg.err != nil {
			a.feedErr = msg.err
			break
		}
		a.feedErr = nil
		a.liveLoaded = true
		a.fromCache = false
		a.articles = msg.articles
		a.countText = countLabel(len(msg.articles))
		if a.cursor >= len(a.articles) {
			a.cursor = 0
		}
		if msg.keyword == "" {
			cmds = append(cmds, a.saveSnapshot(msg.articles))
		}

	case cachedSnapshotMsg:
		// Startup paint only; any live result that arrived first wins.
		if msg.ok && !a.liveLoaded && a.feedErr == nil && len(msg.snap.Articles) > 0 {
			a.articles = msg.snap.Articles
			a.countText = countLabel(len(msg.snap.Articles))
			a.fromCache = true
		}

	case statusLoadedMsg:
		a.liveStatus = true
		if msg.err != nil {
			a.statusText = MsgStatusFailed
			break
		}
		a.statusText = formatSyncStatus(msg.status.LastFetched, msg.status.Total)
		cmds = append(cmds, a.saveStatus(msg.status))

	case cachedStatusMsg:
		if msg.ok && !a.liveStatus {
			a.statusText = formatSyncStatus(msg.status.LastFetched, msg.status.Total)
		}

	case refreshDoneMsg:
		a.refreshing = false
		if msg.err != nil {
			a.statusText = MsgRefreshFailed(msg.err.Error())
			break
		}
		a.notice = MsgRefreshed(msg.result.Fetched)
		cmds = append(cmds, a.issueLoad(a.keyword), a.fetchStatus())

	case searchDebouncedMsg:
		if msg.seq != a.searchSeq {
			// Superseded by a later keystroke; let that timer decide.
			break
		}
		a.keyword = trimmedKeyword(a.searchInput.Value())
		cmds = append(cmds, a.issueLoad(a.keyword))

	case autoRefreshTickMsg:
		if msg.gen != a.tickerGen {
			break
		}
		// Load and status are independent commands: a slow article
		// load cannot hold up the status refresh or the next tick.
		cmds = append(cmds,
			a.issueLoad(a.keyword),
			a.fetchStatus(),
			a.scheduleTick(msg.gen),
		)

	case readerRenderedMsg:
		if a.view == ViewReader {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
			a.readerContent = msg.content
			a.loadingArticle = false
		}

	case linkOpenedMsg:
		if msg.err != nil {
			a.notice = "Could not open link: " + msg.err.Error()
		}

	case feedsListedMsg, sitesListedMsg, feedAddedMsg, siteAddedMsg,
		feedDeletedMsg, siteDeletedMsg, feedCheckedMsg:
		cmds = append(cmds, a.updateModal(msg)...)
	}

	if a.view == ViewReader {
		switch msg.(type) {
		case tea.KeyMsg, tea.WindowSizeMsg, tea.MouseMsg:
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.modal.open {
		return a, tea.Batch(a.handleModalKey(msg)...)
	}

	switch a.view {
	case ViewReader:
		return a.handleReaderKey(msg)
	default:
		return a.handleDashboardKey(msg)
	}
}

func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.searchInput.Focused() {
		switch key {
		case "esc", "enter":
			a.searchInput.Blur()
			return a, nil
		default:
			before := a.searchInput.Value()
			var cmd tea.Cmd
			a.searchInput, cmd = a.searchInput.Update(msg)
			cmds := []tea.Cmd{cmd}
			if a.searchInput.Value() != before {
				cmds = append(cmds, a.armDebounce())
			}
			return a, tea.Batch(cmds...)
		}
	}

	switch key {
	case a.cfg.Keys.Quit:
		return a, tea.Quit
	case a.cfg.Keys.Search, "/":
		a.notice = ""
		a.searchInput.Focus()
		return a, textinput.Blink
	case a.cfg.Keys.Refresh:
		if a.refreshing {
			return a, nil
		}
		a.refreshing = true
		a.notice = ""
		return a, tea.Batch(a.triggerRefresh(), a.spinner.Tick)
	case a.cfg.Keys.Sources:
		return a, tea.Batch(a.openModal()...)
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(a.articles)-1 {
			a.cursor++
		}
		return a, nil
	case a.cfg.Keys.OpenLink:
		if article, ok := a.selectedArticle(); ok {
			return a, a.openLink(article.URL)
		}
		return a, nil
	case "enter":
		if article, ok := a.selectedArticle(); ok {
			a.view = ViewReader
			a.loadingArticle = true
			a.currentArticle = article
			return a, a.renderReader(*article)
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case a.cfg.Keys.Back, "q":
		a.view = ViewDashboard
		a.currentArticle = nil
		a.readerContent = ""
		return a, nil
	case a.cfg.Keys.OpenLink:
		if a.currentArticle != nil {
			return a, a.openLink(a.currentArticle.URL)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a *App) selectedArticle() (*api.Article, bool) {
	if len(a.articles) == 0 || a.cursor < 0 || a.cursor >= len(a.articles) {
		return nil, false
	}
	return &a.articles[a.cursor], true
}

func (a *App) anyBusy() bool {
	return a.refreshing || a.modal.anyBusy()
}

// trimmedKeyword normalizes search input: whitespace-only means an
// unfiltered load.
func trimmedKeyword(s string) string {
	return strings.TrimSpace(s)
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > 120 {
		wordWrapWidth = 120
	}
	if wordWrapWidth < 40 {
		wordWrapWidth = 40
	}
	if a.width > 0 && a.width < 50 {
		wordWrapWidth = a.width - 4
		if wordWrapWidth < 20 {
			wordWrapWidth = 20
		}
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
