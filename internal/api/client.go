package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "newsdeck/1.0 (github.com/newsdeck/newsdeck)"

// Error is a structured failure from the server. Non-2xx responses on
// the API carry an {error} body whose text is shown to the user verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned HTTP %d", e.StatusCode)
}

// Client talks to the aggregation server's JSON API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured server address.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeError turns a non-2xx body into an *Error, preferring the
// server-supplied {error} text when the body parses.
func decodeError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &Error{StatusCode: status, Message: payload.Error}
	}
	return &Error{StatusCode: status}
}

// Articles lists articles, optionally filtered by keyword. An empty
// keyword returns the unfiltered list.
func (c *Client) Articles(keyword string) ([]Article, error) {
	path := "/api/articles"
	if keyword != "" {
		path += "?q=" + url.QueryEscape(keyword)
	}
	var articles []Article
	if err := c.do(http.MethodGet, path, nil, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Status fetches the server's sync status.
func (c *Client) Status() (SyncStatus, error) {
	var status SyncStatus
	err := c.do(http.MethodGet, "/api/status", nil, &status)
	return status, err
}

// Refresh asks the server to re-fetch all sources now.
func (c *Client) Refresh() (RefreshResult, error) {
	var result RefreshResult
	err := c.do(http.MethodPost, "/api/refresh", nil, &result)
	return result, err
}

// Feeds lists the registered feed sources.
func (c *Client) Feeds() ([]FeedSource, error) {
	var feeds []FeedSource
	if err := c.do(http.MethodGet, "/api/feeds", nil, &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

// AddFeed registers a new feed source. The server fetches it immediately
// and reports how many articles were ingested.
func (c *Client) AddFeed(req AddFeedRequest) (AddResult, error) {
	var result AddResult
	err := c.do(http.MethodPost, "/api/feeds", req, &result)
	return result, err
}

// DeleteFeed removes a feed source and its articles.
func (c *Client) DeleteFeed(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/feeds/%d", id), nil, nil)
}

// PreviewFeed validates a candidate feed URL without registering it.
func (c *Client) PreviewFeed(feedURL string) (FeedPreview, error) {
	var preview FeedPreview
	err := c.do(http.MethodGet, "/api/feeds/preview?url="+url.QueryEscape(feedURL), nil, &preview)
	return preview, err
}

// Sites lists the registered scraped sites.
func (c *Client) Sites() ([]ScrapedSite, error) {
	var sites []ScrapedSite
	if err := c.do(http.MethodGet, "/api/sites", nil, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// AddSite registers a new scraped site.
func (c *Client) AddSite(req AddSiteRequest) (AddResult, error) {
	var result AddResult
	err := c.do(http.MethodPost, "/api/sites", req, &result)
	return result, err
}

// DeleteSite removes a scraped site and its articles.
func (c *Client) DeleteSite(id int64) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/sites/%d", id), nil, nil)
}
