package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Cache     CacheConfig     `mapstructure:"cache"`
	UI        UIConfig        `mapstructure:"ui"`
	Keys      KeyConfig       `mapstructure:"keys"`
}

type ServerConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

type DashboardConfig struct {
	// RefreshInterval is the auto-refresh period for the combined
	// article + status reload.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	// SearchDebounce is the quiet period the search box waits for
	// before issuing a load.
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
	// SummaryLength is the maximum number of runes of an article
	// summary shown on a card before the excerpt is cut.
	SummaryLength int `mapstructure:"summary_length"`
}

type CacheConfig struct {
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors"`
	Theme  string   `mapstructure:"theme"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

type KeyConfig struct {
	Quit       string `mapstructure:"quit"`
	Search     string `mapstructure:"search"`
	Refresh    string `mapstructure:"refresh"`
	Sources    string `mapstructure:"sources"`
	SwitchTab  string `mapstructure:"switch_tab"`
	OpenLink   string `mapstructure:"open_link"`
	Back       string `mapstructure:"back"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	cachePath := filepath.Join(homeDir, ".newsdeck", "cache.db")

	return &Config{
		Server: ServerConfig{
			BaseURL:     "http://localhost:5000",
			HTTPTimeout: 30 * time.Second,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: 5 * time.Minute,
			SearchDebounce:  350 * time.Millisecond,
			SummaryLength:   300,
		},
		Cache: CacheConfig{
			Path:    cachePath,
			Timeout: 1 * time.Second,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
				Success:   "#10B981",
			},
		},
		Keys: KeyConfig{
			Quit:      "q",
			Search:    "/",
			Refresh:   "r",
			Sources:   "s",
			SwitchTab: "tab",
			OpenLink:  "o",
			Back:      "esc",
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("server", cfg.Server)
	v.SetDefault("dashboard", cfg.Dashboard)
	v.SetDefault("cache", cfg.Cache)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("keys", cfg.Keys)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "newsdeck")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("NEWSDECK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	return &config, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func expandPaths(cfg *Config) {
	cfg.Cache.Path = expandPath(cfg.Cache.Path)
	cfg.UI.Theme = expandPath(cfg.UI.Theme)
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Convert durations to strings for TOML readability
	serverCfg := map[string]interface{}{
		"base_url":     config.Server.BaseURL,
		"http_timeout": config.Server.HTTPTimeout.String(),
	}

	dashCfg := map[string]interface{}{
		"refresh_interval": config.Dashboard.RefreshInterval.String(),
		"search_debounce":  config.Dashboard.SearchDebounce.String(),
		"summary_length":   config.Dashboard.SummaryLength,
	}

	cacheCfg := map[string]interface{}{
		"path":    config.Cache.Path,
		"timeout": config.Cache.Timeout.String(),
	}

	v.Set("server", serverCfg)
	v.Set("dashboard", dashCfg)
	v.Set("cache", cacheCfg)
	v.Set("ui", config.UI)
	v.Set("keys", config.Keys)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
