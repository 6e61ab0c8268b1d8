// Package resolver turns a requested word into a dictionary record and keeps
// the history of resolved words.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/at-ishikawa/wotd/internal/dictionary"
	"github.com/at-ishikawa/wotd/internal/history"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/resolver/mock_resolver.go -package=mock_resolver

var ErrResolutionFailed = errors.New("could not resolve word")

// FailureMessage is what users see when a word cannot be resolved.
const FailureMessage = "Could not load word. Check your connection and try again."

type WordCatalog interface {
	DailyWord(date string) string
	RandomWord(exclude string) string
}

type HistoryLog interface {
	Record(ctx context.Context, word string, date string)
	All(ctx context.Context) []history.Entry
}

type Resolver struct {
	lookuper dictionary.Lookuper
	catalog  WordCatalog
	history  HistoryLog
	now      func() time.Time

	group singleflight.Group
}

type Option func(*Resolver)

// WithClock replaces time.Now for deciding today's date.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

func New(lookuper dictionary.Lookuper, catalog WordCatalog, historyLog HistoryLog, opts ...Option) *Resolver {
	r := &Resolver{
		lookuper: lookuper,
		catalog:  catalog,
		history:  historyLog,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Today returns the current local date as YYYY-MM-DD.
func (r *Resolver) Today() string {
	return history.DateOf(r.now())
}

// Resolve looks word up and records the resolved word under today's date.
// Nothing is recorded when the lookup fails.
// Concurrent calls for the same word share one lookup, which keeps running
// when the caller that started it goes away. Each caller still returns as
// soon as its own ctx is done.
func (r *Resolver) Resolve(ctx context.Context, word string) (dictionary.WordRecord, error) {
	ch := r.group.DoChan(word, func() (any, error) {
		sharedCtx := context.WithoutCancel(ctx)
		record, err := r.lookuper.Lookup(sharedCtx, word)
		if err != nil {
			return dictionary.WordRecord{}, err
		}
		r.history.Record(sharedCtx, record.Word, r.Today())
		return record, nil
	})

	select {
	case <-ctx.Done():
		return dictionary.WordRecord{}, fmt.Errorf("%w: %w", ErrResolutionFailed, ctx.Err())
	case res := <-ch:
		if res.Shared {
			slog.Default().Debug("shared an in-flight resolution", "word", word)
		}
		if res.Err != nil {
			return dictionary.WordRecord{}, fmt.Errorf("%w: %w", ErrResolutionFailed, res.Err)
		}
		return res.Val.(dictionary.WordRecord), nil
	}
}

func (r *Resolver) ResolveDailyWord(ctx context.Context) (dictionary.WordRecord, error) {
	return r.Resolve(ctx, r.catalog.DailyWord(r.Today()))
}

// ResolveRandomWord resolves a random catalog word other than exclude.
func (r *Resolver) ResolveRandomWord(ctx context.Context, exclude string) (dictionary.WordRecord, error) {
	return r.Resolve(ctx, r.catalog.RandomWord(exclude))
}

// History returns the resolved words, newest first.
func (r *Resolver) History(ctx context.Context) []history.Entry {
	return r.history.All(ctx)
}
