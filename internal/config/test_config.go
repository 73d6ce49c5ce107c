package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:     "http://localhost:0",
			HTTPTimeout: 5 * time.Second,
		},
		Dashboard: DashboardConfig{
			RefreshInterval: 1 * time.Minute,
			SearchDebounce:  350 * time.Millisecond,
			SummaryLength:   300,
		},
		Cache: CacheConfig{
			Path:    "", // No cache file for tests
			Timeout: 1 * time.Second,
		},
		UI:   defaultConfig().UI,
		Keys: defaultConfig().Keys,
	}
}
