// Package preview inspects a candidate feed URL locally, mirroring the
// server's /api/feeds/preview semantics for use without a server.
package preview

import (
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

const userAgent = "newsdeck/1.0 (github.com/newsdeck/newsdeck)"

// Info describes a parsed feed: its advertised title and how many
// entries it currently carries.
type Info struct {
	Title      string
	EntryCount int
}

type Checker struct {
	client *http.Client
	parser *gofeed.Parser
}

func NewChecker(timeout time.Duration) *Checker {
	return &Checker{
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
	}
}

// Check fetches and parses the feed at url.
func (c *Checker) Check(url string) (Info, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return Info{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Info{}, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return Info{}, fmt.Errorf("parsing feed: %w", err)
	}

	return Info{
		Title:      cleanHTML(feed.Title),
		EntryCount: len(feed.Items),
	}, nil
}

var tagRegex = regexp.MustCompile(`<[^>]+>`)

// cleanHTML strips tags and entities from feed-supplied text.
func cleanHTML(raw string) string {
	text := tagRegex.ReplaceAllString(raw, " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}
