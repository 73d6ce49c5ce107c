// Package cache persists the last successful article snapshot so the
// dashboard can paint immediately on startup and the search subcommand
// can work without the server.
package cache

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/newsdeck/newsdeck/internal/api"
)

var (
	articlesBucket = []byte("articles")
	metaBucket     = []byte("metadata")
)

var (
	snapshotKey = []byte("snapshot")
	statusKey   = []byte("status")
)

type Cache struct {
	db *bolt.DB
}

// Snapshot is the persisted article list together with the keyword that
// produced it and when it was stored.
type Snapshot struct {
	Keyword  string        `json:"keyword"`
	Articles []api.Article `json:"articles"`
	StoredAt time.Time     `json:"stored_at"`
}

func Open(path string, timeout time.Duration) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{articlesBucket, metaBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// SaveSnapshot replaces the stored article list. Only unfiltered loads
// are worth keeping; callers skip keyword-filtered results.
func (c *Cache) SaveSnapshot(snap Snapshot) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(articlesBucket)
		data, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		return b.Put(snapshotKey, data)
	})
}

// Snapshot returns the stored article list, or ok=false when the cache
// is empty or unreadable.
func (c *Cache) Snapshot() (Snapshot, bool) {
	var snap Snapshot
	ok := false
	_ = c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(articlesBucket).Get(snapshotKey)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil
		}
		ok = true
		return nil
	})
	return snap, ok
}

// SaveStatus stores the last seen sync status.
func (c *Cache) SaveStatus(status api.SyncStatus) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(status)
		if err != nil {
			return err
		}
		return tx.Bucket(metaBucket).Put(statusKey, data)
	})
}

// Status returns the last seen sync status, or ok=false when none is stored.
func (c *Cache) Status() (api.SyncStatus, bool) {
	var status api.SyncStatus
	ok := false
	_ = c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(metaBucket).Get(statusKey)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &status); err != nil {
			return nil
		}
		ok = true
		return nil
	})
	return status, ok
}
