package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/newsdeck/newsdeck/internal/api"
	"github.com/newsdeck/newsdeck/internal/cache"
	"github.com/newsdeck/newsdeck/internal/config"
	"github.com/newsdeck/newsdeck/internal/debuglog"
	"github.com/newsdeck/newsdeck/internal/tui"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	flagConfig     string
	flagServer     string
	flagDebugLevel string
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "newsdeck",
	Short: "Terminal dashboard for an AI news aggregation server",
	Long: "newsdeck is a terminal front end for a news aggregation server:\n" +
		"browse and search collected articles, trigger fetches and manage\n" +
		"the RSS feeds and scraped sites the server collects from.",
	RunE:          runDashboard,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "server base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDebugLevel, "debug-level", "off", "debug log level (debug, info, warn, error, off)")
	rootCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "skip startup banner")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(generateConfigCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration for any subcommand,
// honoring the shared --config and --server overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagServer != "" {
		cfg.Server.BaseURL = flagServer
	}
	return cfg, nil
}

func setupLogging() error {
	level := debuglog.ParseLogLevel(flagDebugLevel)
	return debuglog.Setup(level)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer debuglog.Close()

	tui.ApplyColors(tui.Colors{
		Primary:   cfg.UI.Colors.Primary,
		Secondary: cfg.UI.Colors.Secondary,
		Accent:    cfg.UI.Colors.Accent,
		Text:      cfg.UI.Colors.Text,
		Muted:     cfg.UI.Colors.Muted,
		Error:     cfg.UI.Colors.Error,
		Success:   cfg.UI.Colors.Success,
	})
	if err := tui.LoadTheme(cfg.UI.Theme); err != nil {
		return err
	}

	if !flagQuiet {
		showBanner()
	}

	client := api.NewClient(cfg.Server.BaseURL, cfg.Server.HTTPTimeout)

	// A broken snapshot cache never blocks the dashboard.
	store, err := cache.Open(cfg.Cache.Path, cfg.Cache.Timeout)
	if err != nil {
		debuglog.Warnf("opening snapshot cache: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	app := tui.NewApp(client, store, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

func showBanner() {
	colors := []lipgloss.Color{
		lipgloss.Color("#FF6B6B"),
		lipgloss.Color("#FFA86B"),
		lipgloss.Color("#95E1D3"),
		lipgloss.Color("#4ECDC4"),
	}

	lines := []string{
		"▐▛▀▖ ▞▀▚ ▌  ▌ ▞▀▚ ▛▀▖ ▞▀▚ ▞▀▘ ▌ ▗",
		"▐▌ ▌ ▛▀▀ ▌▖▖▌ ▚▄▄ ▌ ▌ ▛▀▀ ▝▀▚ ▛▞ ",
		"▐▌ ▘ ▝▀▘ ▝▘▝▘ ▝▀▘ ▀▀  ▝▀▘ ▀▀▘ ▘ ▝",
		"",
		"    AI news dashboard",
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(colors[i%len(colors)]).
			Bold(i < 3)
		coloredLines = append(coloredLines, style.Render(line))
	}

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(0, 2).
		Render(banner)

	fmt.Println(lipgloss.NewStyle().
		Width(60).
		Align(lipgloss.Center).
		Render(framed))
}
