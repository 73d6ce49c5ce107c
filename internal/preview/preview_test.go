package preview

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example &amp; Friends</title>
    <link>https://example.org</link>
    <item><title>First</title><link>https://example.org/1</link></item>
    <item><title>Second</title><link>https://example.org/2</link></item>
    <item><title>Third</title><link>https://example.org/3</link></item>
  </channel>
</rss>`

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		handler     func(w http.ResponseWriter, r *http.Request)
		expectTitle string
		expectCount int
		expectError bool
	}{
		{
			name: "valid feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/rss+xml")
				w.Write([]byte(sampleRSS))
			},
			expectTitle: "Example & Friends",
			expectCount: 3,
		},
		{
			name: "not a feed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html><body>not a feed</body></html>"))
			},
			expectError: true,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.handler))
			defer server.Close()

			checker := NewChecker(5 * time.Second)
			info, err := checker.Check(server.URL)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info.Title != tt.expectTitle {
				t.Errorf("expected title %q, got %q", tt.expectTitle, info.Title)
			}
			if info.EntryCount != tt.expectCount {
				t.Errorf("expected %d entries, got %d", tt.expectCount, info.EntryCount)
			}
		})
	}
}

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<b>Bold</b> title", "Bold title"},
		{"Plain", "Plain"},
		{"A &amp; B", "A & B"},
		{"  spaced   out  ", "spaced out"},
	}

	for _, tt := range tests {
		if got := cleanHTML(tt.input); got != tt.expected {
			t.Errorf("cleanHTML(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
