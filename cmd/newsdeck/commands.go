package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/newsdeck/newsdeck/internal/api"
	"github.com/newsdeck/newsdeck/internal/cache"
	"github.com/newsdeck/newsdeck/internal/config"
	"github.com/newsdeck/newsdeck/internal/preview"
	"github.com/newsdeck/newsdeck/internal/search"
	"github.com/newsdeck/newsdeck/internal/tui"
	"github.com/newsdeck/newsdeck/internal/validation"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsdeck %s\n", Version)
	},
}

var flagCheckLocal bool

// checkCmd validates a feed URL without registering it, either through
// the server's preview endpoint or by fetching the feed directly.
var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Validate a feed URL without adding it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		validator := validation.NewSourceURLValidator()
		url, err := validator.ValidateAndNormalize(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if flagCheckLocal {
			checker := preview.NewChecker(cfg.Server.HTTPTimeout)
			info, err := checker.Check(url)
			if err != nil {
				return err
			}
			fmt.Println(tui.MsgFeedOK(info.Title, info.EntryCount))
			return nil
		}

		client := api.NewClient(cfg.Server.BaseURL, cfg.Server.HTTPTimeout)
		p, err := client.PreviewFeed(url)
		if err != nil {
			return err
		}
		fmt.Println(tui.MsgFeedOK(p.Title, p.EntryCount))
		return nil
	},
}

var flagSearchLimit int

// searchCmd queries the cached article snapshot offline. It never
// contacts the server, so it works when the aggregator is down.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the cached article snapshot offline",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := cache.Open(cfg.Cache.Path, cfg.Cache.Timeout)
		if err != nil {
			return fmt.Errorf("opening snapshot cache: %w", err)
		}
		defer store.Close()

		snap, ok := store.Snapshot()
		if !ok || len(snap.Articles) == 0 {
			return fmt.Errorf("no cached articles yet, run the dashboard first")
		}

		engine, err := search.NewEngine(snap.Articles)
		if err != nil {
			return err
		}
		defer engine.Close()

		query := ""
		for i, arg := range args {
			if i > 0 {
				query += " "
			}
			query += arg
		}

		results, err := engine.Search(query, flagSearchLimit)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Printf("No articles matching \"%s\"\n", query)
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s %s\n", tui.CategoryBadge(r.Article.Category), r.Article.Title)
			if r.Article.URL != "" {
				fmt.Printf("  %s\n", r.Article.URL)
			}
		}
		fmt.Printf("\n%d of %d cached articles (snapshot from %s)\n",
			len(results), len(snap.Articles), snap.StoredAt.Local().Format("Jan 2, 15:04"))
		return nil
	},
}

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Write the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			path = filepath.Join(home, ".config", "newsdeck", "config.toml")
		}

		if err := config.GenerateDefaultConfig(path); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", path)
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&flagCheckLocal, "local", false, "fetch and parse the feed directly instead of asking the server")
	searchCmd.Flags().IntVar(&flagSearchLimit, "limit", 10, "maximum number of results")
}
