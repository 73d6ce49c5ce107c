package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second), server
}

func TestClient_Articles(t *testing.T) {
	tests := []struct {
		name        string
		keyword     string
		handler     func(w http.ResponseWriter, r *http.Request)
		expectCount int
		expectError bool
	}{
		{
			name:    "unfiltered list",
			keyword: "",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/articles" {
					t.Errorf("expected /api/articles, got %s", r.URL.Path)
				}
				if r.URL.RawQuery != "" {
					t.Errorf("expected no query, got %s", r.URL.RawQuery)
				}
				json.NewEncoder(w).Encode([]Article{
					{Title: "One", URL: "http://a/1"},
					{Title: "Two", URL: "http://a/2"},
				})
			},
			expectCount: 2,
		},
		{
			name:    "keyword is escaped",
			keyword: "game dev",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("q"); got != "game dev" {
					t.Errorf("expected q=game dev, got %q", got)
				}
				json.NewEncoder(w).Encode([]Article{})
			},
			expectCount: 0,
		},
		{
			name:    "server error",
			keyword: "",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(tt.handler)
			defer server.Close()

			articles, err := client.Articles(tt.keyword)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(articles) != tt.expectCount {
				t.Errorf("expected %d articles, got %d", tt.expectCount, len(articles))
			}
		})
	}
}

func TestClient_ErrorBodyIsSurfaced(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Feed already exists"})
	})
	defer server.Close()

	_, err := client.AddFeed(AddFeedRequest{URL: "http://example.org/feed.xml"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Message != "Feed already exists" {
		t.Errorf("expected server text verbatim, got %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("expected status 409, got %d", apiErr.StatusCode)
	}
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.Status()
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Error() != "server returned HTTP 502" {
		t.Errorf("unexpected message: %q", apiErr.Error())
	}
}

func TestClient_AddFeedRoundTrip(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %s", ct)
		}
		var req AddFeedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		json.NewEncoder(w).Encode(AddResult{
			ID: 7, Name: req.Name, URL: req.URL, Category: req.Category, Fetched: 12,
		})
	})
	defer server.Close()

	result, err := client.AddFeed(AddFeedRequest{
		URL: "https://example.org/feed.xml", Name: "Ex", Category: "AI",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Name != "Ex" || result.Fetched != 12 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestClient_DeleteFeedPath(t *testing.T) {
	var gotPath, gotMethod string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})
	defer server.Close()

	if err := client.DeleteFeed(42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/feeds/42" {
		t.Errorf("expected DELETE /api/feeds/42, got %s %s", gotMethod, gotPath)
	}
}

func TestClient_PreviewFeed(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("url"); got != "https://example.org/feed.xml" {
			t.Errorf("unexpected url param: %q", got)
		}
		json.NewEncoder(w).Encode(FeedPreview{Title: "Example Blog", EntryCount: 9})
	})
	defer server.Close()

	preview, err := client.PreviewFeed("https://example.org/feed.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if preview.Title != "Example Blog" || preview.EntryCount != 9 {
		t.Errorf("unexpected preview: %+v", preview)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	if _, err := client.Articles(""); err == nil {
		t.Fatal("expected transport error, got nil")
	}
}
