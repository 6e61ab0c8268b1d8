// Package history records which word was resolved on each day.
package history

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/at-ishikawa/wotd/internal/kvstore"
)

const (
	DefaultMaxEntries = 100
	SnapshotKey       = "wotd_history"

	dateLayout = "2006-01-02"
)

type Entry struct {
	Date string `json:"date" yaml:"date"`
	Word string `json:"word" yaml:"word"`
}

// ShortDate formats the entry date like "Mar 1".
// A date that cannot be parsed is returned as is.
func (e Entry) ShortDate() string {
	t, err := time.ParseInLocation(dateLayout, e.Date, time.Local)
	if err != nil {
		return e.Date
	}
	return t.Format("Jan 2")
}

// DateOf returns the calendar date of t in t's location as YYYY-MM-DD.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}

// Log is a newest-first list with at most one entry per date.
type Log struct {
	kv         kvstore.Store
	maxEntries int

	mu sync.Mutex
}

type Option func(*Log)

func WithMaxEntries(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.maxEntries = n
		}
	}
}

func New(kv kvstore.Store, opts ...Option) *Log {
	l := &Log{
		kv:         kv,
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// All returns the entries, newest first.
func (l *Log) All(ctx context.Context) []Entry {
	var entries []Entry
	if !kvstore.ReadJSON(ctx, l.kv, SnapshotKey, &entries) || entries == nil {
		return []Entry{}
	}
	return entries
}

// Record puts word at the front for date, replacing any entry with the same date.
func (l *Log) Record(ctx context.Context, word string, date string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.All(ctx)
	entries := make([]Entry, 0, len(current)+1)
	entries = append(entries, Entry{Date: date, Word: word})
	for _, entry := range current {
		if entry.Date == date {
			continue
		}
		entries = append(entries, entry)
	}
	if len(entries) > l.maxEntries {
		entries = entries[:l.maxEntries]
	}

	if err := kvstore.WriteJSON(ctx, l.kv, SnapshotKey, entries); err != nil {
		slog.Default().Debug("failed to persist history", "word", word, "date", date, "error", err)
	}
}
