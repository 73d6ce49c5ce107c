package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsdeck/newsdeck/internal/api"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := openTestCache(t)

	_, ok := c.Snapshot()
	assert.False(t, ok, "fresh cache should have no snapshot")

	snap := Snapshot{
		Keyword: "",
		Articles: []api.Article{
			{Title: "Neural NPCs", URL: "http://a/1", Source: "Example", Category: "Game Dev AI"},
			{Title: "Diffusion survey", URL: "http://a/2", Source: "arXiv", Category: "Research"},
		},
		StoredAt: time.Now(),
	}
	require.NoError(t, c.SaveSnapshot(snap))

	got, ok := c.Snapshot()
	require.True(t, ok)
	assert.Len(t, got.Articles, 2)
	assert.Equal(t, "Neural NPCs", got.Articles[0].Title)
}

func TestSnapshotIsReplacedWholesale(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.SaveSnapshot(Snapshot{
		Articles: []api.Article{{Title: "Old", URL: "http://a/old"}},
	}))
	require.NoError(t, c.SaveSnapshot(Snapshot{
		Articles: []api.Article{{Title: "New", URL: "http://a/new"}},
	}))

	got, ok := c.Snapshot()
	require.True(t, ok)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, "New", got.Articles[0].Title)
}

func TestStatusRoundTrip(t *testing.T) {
	c := openTestCache(t)

	_, ok := c.Status()
	assert.False(t, ok)

	require.NoError(t, c.SaveStatus(api.SyncStatus{Total: 128, LastFetched: "2025-06-01 10:00:00"}))

	status, ok := c.Status()
	require.True(t, ok)
	assert.Equal(t, 128, status.Total)
	assert.Equal(t, "2025-06-01 10:00:00", status.LastFetched)
}
