package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	var content string
	switch a.view {
	case ViewReader:
		content = a.renderReaderView()
	default:
		content = a.renderDashboard()
	}

	if a.modal.open {
		return a.renderModalOverlay()
	}
	return content
}

func (a *App) renderDashboard() string {
	var b strings.Builder

	header := TitleStyle.Render("› " + AppName)
	if a.fromCache {
		header += MutedStyle.Render("  (cached)")
	}
	b.WriteString(header + "\n")

	status := a.statusText
	if a.refreshing {
		status = a.spinner.View() + " " + MsgRefreshing
	}
	b.WriteString(MutedStyle.Render(status) + "\n\n")

	b.WriteString(a.searchInput.View() + "\n")

	count := a.countText
	if count == "" {
		count = MsgLoading
	}
	b.WriteString(SelectedStyle.Render(count) + "\n\n")

	switch {
	case a.feedErr != nil:
		b.WriteString(ErrorStyle.Render("✗ Could not load articles: "+a.feedErr.Error()) + "\n")
	case len(a.articles) == 0 && a.countText != "":
		b.WriteString(MutedStyle.Render(a.emptyStateMessage()) + "\n")
	default:
		b.WriteString(a.renderArticleRows())
	}

	help := fmt.Sprintf("/: search • %s: refresh • %s: sources • enter: read • %s: open • %s: quit",
		a.cfg.Keys.Refresh, a.cfg.Keys.Sources, a.cfg.Keys.OpenLink, a.cfg.Keys.Quit)
	footer := HelpStyle.Render(help)
	if a.notice != "" {
		footer = MutedStyle.Render(a.notice) + "  " + footer
	}

	return lipgloss.JoinVertical(lipgloss.Top, b.String(), footer)
}

// emptyStateMessage echoes the active keyword so the user can see what
// produced zero results.
func (a *App) emptyStateMessage() string {
	if a.keyword != "" {
		return fmt.Sprintf("No articles matching \"%s\"", a.keyword)
	}
	return "No articles yet. Press " + a.cfg.Keys.Refresh + " to refresh."
}

func (a *App) renderArticleRows() string {
	var b strings.Builder

	visible := a.height - 12
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(a.articles) {
		end = len(a.articles)
	}

	for i := start; i < end; i++ {
		article := a.articles[i]

		title := truncateEnd(article.Title, a.width-24)
		badge := CategoryBadge(article.Category)
		line := badge + " " + title
		if i == a.cursor {
			line = SelectedStyle.Render("› ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")

		meta := article.Source
		if published := formatPublished(article.Published); published != "" {
			meta += " · " + published
		}
		b.WriteString("  " + MutedStyle.Render(truncateEnd(meta, a.width-4)) + "\n")

		if i == a.cursor && article.Summary != "" {
			excerpt := summaryExcerpt(article.Summary, a.cfg.Dashboard.SummaryLength)
			b.WriteString("  " + MutedStyle.Render(truncateEnd(excerpt, a.width-4)) + "\n")
		}
	}

	return b.String()
}

func (a *App) renderReaderView() string {
	if a.loadingArticle {
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height-1).
			Align(lipgloss.Center, lipgloss.Center).
			Render(MutedStyle.Render("Loading article..."))
	}

	help := HelpStyle.Render(fmt.Sprintf("%s: open in browser • %s: back",
		a.cfg.Keys.OpenLink, a.cfg.Keys.Back))
	return lipgloss.JoinVertical(lipgloss.Top, a.viewport.View(), help)
}

func (a *App) renderModalOverlay() string {
	m := &a.modal

	modalWidth := (a.width * 4) / 5
	if modalWidth < 40 {
		modalWidth = a.width - 2
	}
	contentWidth := modalWidth - 4

	feedTab := "  Feeds  "
	siteTab := "  Sites  "
	if m.tab == tabFeeds {
		feedTab = SelectedStyle.Render("[ Feeds ]")
		siteTab = MutedStyle.Render(siteTab)
	} else {
		siteTab = SelectedStyle.Render("[ Sites ]")
		feedTab = MutedStyle.Render(feedTab)
	}
	tabs := feedTab + " " + siteTab

	var body string
	if m.tab == tabFeeds {
		body = a.renderFeedTab(contentWidth)
	} else {
		body = a.renderSiteTab(contentWidth)
	}

	help := HelpStyle.Render("tab: switch • enter: next field • ctrl+s: add • ctrl+p: check url • ctrl+x: delete • esc: close")

	modal := lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("› sources"),
		tabs,
		"",
		body,
		"",
		help,
	)

	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SecondaryColor).
		Padding(1, 2).
		Width(modalWidth).
		Render(modal)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, framed)
}

func (a *App) renderFeedTab(width int) string {
	m := &a.modal

	var b strings.Builder
	b.WriteString("URL      " + m.feedURL.View() + "\n")
	b.WriteString("Name     " + m.feedName.View() + "\n")
	b.WriteString("Category " + m.feedCategory.View() + "\n")

	if m.feedStatus != "" {
		b.WriteString("\n" + renderFormStatus(m.feedStatus, m.feedStatusIsErr, m.submittingFeed || m.checkingFeed, a.spinner.View()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderRegistry(&m.feeds, width, false))
	return b.String()
}

func (a *App) renderSiteTab(width int) string {
	m := &a.modal

	var b strings.Builder
	b.WriteString("URL      " + m.siteURL.View() + "\n")
	b.WriteString("Name     " + m.siteName.View() + "\n")
	b.WriteString("Query    " + m.siteQuery.View() + "\n")
	b.WriteString("Category " + m.siteCategory.View() + "\n")

	if m.siteStatus != "" {
		b.WriteString("\n" + renderFormStatus(m.siteStatus, m.siteStatusIsErr, m.submittingSite, a.spinner.View()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(renderRegistry(&m.sites, width, true))
	return b.String()
}

func renderFormStatus(text string, isErr, busy bool, spinnerView string) string {
	if busy {
		return spinnerView + " " + MutedStyle.Render(text)
	}
	if isErr {
		return ErrorStyle.Render("✗ " + text)
	}
	return SuccessStyle.Render("✓ " + text)
}

func renderRegistry(reg *registryState, width int, showQuery bool) string {
	switch {
	case reg.loading:
		return MutedStyle.Render(MsgLoading)
	case reg.err != nil:
		return ErrorStyle.Render("✗ Could not load sources: " + reg.err.Error())
	case len(reg.rows) == 0:
		return MutedStyle.Render("No sources registered yet.")
	}

	var b strings.Builder
	for i, row := range reg.rows {
		marker := "  "
		if i == reg.cursor {
			marker = SelectedStyle.Render("› ")
		}

		line := row.name + " " + CategoryBadge(row.category)
		if reg.deletingID == row.id {
			line += " " + MutedStyle.Render(MsgDeleting)
		}
		b.WriteString(marker + truncateEnd(line, width-2) + "\n")

		detail := truncateMiddle(row.url, width-6)
		if showQuery && row.query != "" {
			detail += MutedStyle.Render("  q=" + row.query)
		}
		b.WriteString("   " + MutedStyle.Render(detail) + "\n")
	}
	return b.String()
}
