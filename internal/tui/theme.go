package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// themeFile is the on-disk shape of an optional theme override. Any
// field left empty keeps the built-in color.
type themeFile struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Accent    string `toml:"accent"`
	Text      string `toml:"text"`
	Muted     string `toml:"muted"`
	Error     string `toml:"error"`
	Success   string `toml:"success"`

	Categories map[string]string `toml:"categories"`
}

// Colors is the palette override shape accepted from configuration.
// Empty fields keep the built-in color.
type Colors struct {
	Primary   string
	Secondary string
	Accent    string
	Text      string
	Muted     string
	Error     string
	Success   string
}

// ApplyColors applies configuration palette overrides. A theme file
// loaded afterwards wins over these.
func ApplyColors(c Colors) {
	applyTheme(themeFile{
		Primary:   c.Primary,
		Secondary: c.Secondary,
		Accent:    c.Accent,
		Text:      c.Text,
		Muted:     c.Muted,
		Error:     c.Error,
		Success:   c.Success,
	})
}

// LoadTheme applies color overrides from a TOML theme file. A missing
// path is not an error; a malformed file is.
func LoadTheme(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading theme: %w", err)
	}

	var theme themeFile
	if err := toml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("parsing theme: %w", err)
	}

	applyTheme(theme)
	return nil
}

func applyTheme(theme themeFile) {
	set := func(target *lipgloss.Color, value string) {
		if value != "" {
			*target = lipgloss.Color(value)
		}
	}

	set(&PrimaryColor, theme.Primary)
	set(&SecondaryColor, theme.Secondary)
	set(&AccentColor, theme.Accent)
	set(&TextColor, theme.Text)
	set(&MutedColor, theme.Muted)
	set(&ErrorColor, theme.Error)
	set(&SuccessColor, theme.Success)

	for class, color := range theme.Categories {
		if _, known := categoryColors[class]; known && color != "" {
			categoryColors[class] = lipgloss.Color(color)
		}
	}

	rebuildStyles()
}

// rebuildStyles refreshes the derived styles after a palette change.
func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
	HelpStyle = lipgloss.NewStyle().Foreground(MutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	SelectedStyle = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
}
