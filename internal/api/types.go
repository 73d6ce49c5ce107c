package api

// Article is a single aggregated item as the server returns it. The list
// is replaced wholesale on every load; articles are never mutated here.
type Article struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Category  string `json:"category"`
	Summary   string `json:"summary"`
	Published string `json:"published"`
}

// FeedSource is a user-registered RSS/Atom feed. The ID is assigned by
// the server; the client only holds it long enough to issue deletes.
type FeedSource struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// ScrapedSite is a query-driven scraped website registration.
type ScrapedSite struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Query    string `json:"query"`
	Category string `json:"category"`
}

// SyncStatus reflects the server's fetch state. LastFetched is empty
// until the server has completed at least one fetch.
type SyncStatus struct {
	Total       int    `json:"total"`
	LastFetched string `json:"last_fetched"`
}

// AddResult is the response to a successful feed or site registration.
// Fetched is the number of articles ingested immediately.
type AddResult struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Fetched  int    `json:"fetched"`
}

// FeedPreview is the server's validation result for a candidate feed URL.
type FeedPreview struct {
	Title      string `json:"title"`
	EntryCount int    `json:"entry_count"`
}

// RefreshResult summarizes a server-side re-fetch of all sources.
type RefreshResult struct {
	Fetched     int    `json:"fetched"`
	Total       int    `json:"total"`
	LastFetched string `json:"last_fetched"`
}

// AddFeedRequest is the body for POST /api/feeds.
type AddFeedRequest struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AddSiteRequest is the body for POST /api/sites.
type AddSiteRequest struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Query    string `json:"query"`
	Category string `json:"category"`
}
