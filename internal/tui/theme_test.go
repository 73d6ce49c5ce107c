package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadThemeMissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadTheme(""))
	assert.NoError(t, LoadTheme(filepath.Join(t.TempDir(), "nope.toml")))
}

func TestLoadThemeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("primary = [broken"), 0o644))

	assert.Error(t, LoadTheme(path))
}

func TestLoadThemeOverrides(t *testing.T) {
	origPrimary := PrimaryColor
	origMuted := MutedColor
	origCategory := categoryColors["github"]
	t.Cleanup(func() {
		PrimaryColor = origPrimary
		MutedColor = origMuted
		categoryColors["github"] = origCategory
		rebuildStyles()
	})

	path := filepath.Join(t.TempDir(), "theme.toml")
	content := `
primary = "#112233"

[categories]
github = "#445566"
unknown = "#778899"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, LoadTheme(path))

	assert.Equal(t, lipgloss.Color("#112233"), PrimaryColor)
	assert.Equal(t, lipgloss.Color("#445566"), categoryColors["github"])
	// Fields left out keep their built-in values, unknown classes are ignored.
	assert.Equal(t, origMuted, MutedColor)
	_, hasUnknown := categoryColors["unknown"]
	assert.False(t, hasUnknown)
}
