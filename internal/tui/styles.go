package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const AppName = "newsdeck"

// Palette. Overridable via a theme file, see theme.go.
var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")
	TextColor      = lipgloss.Color("#EAEAEA")
	MutedColor     = lipgloss.Color("#94A3B8")
	ErrorColor     = lipgloss.Color("#EF4444")
	SuccessColor   = lipgloss.Color("#10B981")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Category badge colors. Every known category has a dedicated color;
// anything else falls back to the generic AI badge.
var categoryColors = map[string]lipgloss.Color{
	"github":   lipgloss.Color("#A78BFA"),
	"research": lipgloss.Color("#60A5FA"),
	"gamedev":  lipgloss.Color("#34D399"),
	"gaming":   lipgloss.Color("#FBBF24"),
	"ai":       lipgloss.Color("#F472B6"),
}

// CategoryClass maps a server-supplied category to its badge class.
// The mapping is total: unknown and empty categories get "ai".
func CategoryClass(category string) string {
	switch category {
	case "GitHub":
		return "github"
	case "Research":
		return "research"
	case "Game Dev AI":
		return "gamedev"
	case "Gaming":
		return "gaming"
	default:
		return "ai"
	}
}

// CategoryBadge renders a colored badge for the category. Unknown
// categories keep their text but wear the default AI color.
func CategoryBadge(category string) string {
	label := category
	if label == "" {
		label = "AI"
	}
	color := categoryColors[CategoryClass(category)]
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render("[" + label + "]")
}
