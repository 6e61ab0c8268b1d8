// Package wordcache keeps resolved word records so repeated lookups avoid the network.
package wordcache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/at-ishikawa/wotd/internal/dictionary"
	"github.com/at-ishikawa/wotd/internal/kvstore"
)

const (
	DefaultMaxEntries = 50
	SnapshotKey       = "wotd_cache"
)

// Cache is a bounded map of word records stored as one snapshot.
// When the snapshot is full the whole map is cleared before the next insert.
type Cache struct {
	kv         kvstore.Store
	maxEntries int

	// serializes read-modify-write of the snapshot
	mu sync.Mutex
}

var _ dictionary.RecordCache = (*Cache)(nil)

type Option func(*Cache)

func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

func New(kv kvstore.Store, opts ...Option) *Cache {
	c := &Cache{
		kv:         kv,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) snapshot(ctx context.Context) map[string]dictionary.WordRecord {
	records := make(map[string]dictionary.WordRecord)
	if !kvstore.ReadJSON(ctx, c.kv, SnapshotKey, &records) || records == nil {
		return make(map[string]dictionary.WordRecord)
	}
	return records
}

func (c *Cache) Lookup(ctx context.Context, word string) (dictionary.WordRecord, bool) {
	record, ok := c.snapshot(ctx)[word]
	return record, ok
}

func (c *Cache) Store(ctx context.Context, word string, record dictionary.WordRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := c.snapshot(ctx)
	if len(records) >= c.maxEntries {
		slog.Default().Debug("word cache is full, clearing", "entries", len(records))
		records = make(map[string]dictionary.WordRecord)
	}
	records[word] = record

	if err := kvstore.WriteJSON(ctx, c.kv, SnapshotKey, records); err != nil {
		// the record is still returned to the caller
		slog.Default().Debug("failed to persist word cache", "word", word, "error", err)
	}
}

// Len returns the number of cached records.
func (c *Cache) Len(ctx context.Context) int {
	return len(c.snapshot(ctx))
}
