package resolver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wotd/internal/catalog"
	"github.com/at-ishikawa/wotd/internal/dictionary"
	"github.com/at-ishikawa/wotd/internal/history"
	"github.com/at-ishikawa/wotd/internal/kvstore"
	mock_dictionary "github.com/at-ishikawa/wotd/internal/mocks/dictionary"
	mock_resolver "github.com/at-ishikawa/wotd/internal/mocks/resolver"
	"github.com/at-ishikawa/wotd/internal/wordcache"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local)
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	record := dictionary.WordRecord{Word: "quixotic", Meanings: []dictionary.Meaning{}}
	lookupErr := errors.Join(dictionary.ErrLookupFailed, dictionary.ErrNotFound)

	tests := []struct {
		name       string
		word       string
		setup      func(lookuper *mock_dictionary.MockLookuper, historyLog *mock_resolver.MockHistoryLog)
		want       dictionary.WordRecord
		wantErrors []error
	}{
		{
			name: "records the resolved word under today's date",
			word: "quixotic",
			setup: func(lookuper *mock_dictionary.MockLookuper, historyLog *mock_resolver.MockHistoryLog) {
				lookuper.EXPECT().Lookup(gomock.Any(), "quixotic").Return(record, nil)
				historyLog.EXPECT().Record(gomock.Any(), "quixotic", "2024-03-01")
			},
			want: record,
		},
		{
			name: "records the substituted word",
			word: "zzyzx",
			setup: func(lookuper *mock_dictionary.MockLookuper, historyLog *mock_resolver.MockHistoryLog) {
				lookuper.EXPECT().Lookup(gomock.Any(), "zzyzx").Return(dictionary.WordRecord{Word: "ephemeral"}, nil)
				historyLog.EXPECT().Record(gomock.Any(), "ephemeral", "2024-03-01")
			},
			want: dictionary.WordRecord{Word: "ephemeral"},
		},
		{
			name: "failure leaves history untouched",
			word: "quixotic",
			setup: func(lookuper *mock_dictionary.MockLookuper, historyLog *mock_resolver.MockHistoryLog) {
				lookuper.EXPECT().Lookup(gomock.Any(), "quixotic").Return(dictionary.WordRecord{}, lookupErr)
			},
			wantErrors: []error{ErrResolutionFailed, dictionary.ErrLookupFailed, dictionary.ErrNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			lookuper := mock_dictionary.NewMockLookuper(ctrl)
			historyLog := mock_resolver.NewMockHistoryLog(ctrl)
			tt.setup(lookuper, historyLog)

			r := New(lookuper, mock_resolver.NewMockWordCatalog(ctrl), historyLog, WithClock(fixedClock()))
			got, err := r.Resolve(ctx, tt.word)
			if len(tt.wantErrors) > 0 {
				for _, wantErr := range tt.wantErrors {
					assert.ErrorIs(t, err, wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ResolveDailyWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookuper := mock_dictionary.NewMockLookuper(ctrl)
	wordCatalog := mock_resolver.NewMockWordCatalog(ctrl)
	historyLog := mock_resolver.NewMockHistoryLog(ctrl)

	gomock.InOrder(
		wordCatalog.EXPECT().DailyWord("2024-03-01").Return("quixotic"),
		lookuper.EXPECT().Lookup(gomock.Any(), "quixotic").Return(dictionary.WordRecord{Word: "quixotic"}, nil),
		historyLog.EXPECT().Record(gomock.Any(), "quixotic", "2024-03-01"),
	)

	r := New(lookuper, wordCatalog, historyLog, WithClock(fixedClock()))
	got, err := r.ResolveDailyWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "quixotic", got.Word)
}

func TestResolver_ResolveRandomWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookuper := mock_dictionary.NewMockLookuper(ctrl)
	wordCatalog := mock_resolver.NewMockWordCatalog(ctrl)
	historyLog := mock_resolver.NewMockHistoryLog(ctrl)

	wordCatalog.EXPECT().RandomWord("quixotic").Return("ephemeral")
	lookuper.EXPECT().Lookup(gomock.Any(), "ephemeral").Return(dictionary.WordRecord{Word: "ephemeral"}, nil)
	historyLog.EXPECT().Record(gomock.Any(), "ephemeral", "2024-03-01")

	r := New(lookuper, wordCatalog, historyLog, WithClock(fixedClock()))
	got, err := r.ResolveRandomWord(context.Background(), "quixotic")
	require.NoError(t, err)
	assert.Equal(t, "ephemeral", got.Word)
}

func TestResolver_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	historyLog := mock_resolver.NewMockHistoryLog(ctrl)
	entries := []history.Entry{{Date: "2024-03-01", Word: "quixotic"}}
	historyLog.EXPECT().All(gomock.Any()).Return(entries)

	r := New(mock_dictionary.NewMockLookuper(ctrl), mock_resolver.NewMockWordCatalog(ctrl), historyLog)
	assert.Equal(t, entries, r.History(context.Background()))
}

func TestResolver_Today(t *testing.T) {
	r := New(nil, nil, nil, WithClock(func() time.Time {
		return time.Date(2024, 12, 31, 23, 59, 0, 0, time.Local)
	}))
	assert.Equal(t, "2024-12-31", r.Today())
}

func TestResolver_ConcurrentResolveSharesLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookuper := mock_dictionary.NewMockLookuper(ctrl)
	historyLog := mock_resolver.NewMockHistoryLog(ctrl)

	release := make(chan struct{})
	lookuper.EXPECT().Lookup(gomock.Any(), "quixotic").DoAndReturn(func(context.Context, string) (dictionary.WordRecord, error) {
		<-release
		return dictionary.WordRecord{Word: "quixotic"}, nil
	}).Times(1)
	historyLog.EXPECT().Record(gomock.Any(), "quixotic", "2024-03-01").Times(1)

	r := New(lookuper, mock_resolver.NewMockWordCatalog(ctrl), historyLog, WithClock(fixedClock()))

	const callers = 5
	var wg sync.WaitGroup
	var resolved atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := r.Resolve(context.Background(), "quixotic")
			if err == nil && record.Word == "quixotic" {
				resolved.Add(1)
			}
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(callers), resolved.Load())
}

func TestResolver_CancelledCallerDoesNotFailOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookuper := mock_dictionary.NewMockLookuper(ctrl)
	historyLog := mock_resolver.NewMockHistoryLog(ctrl)

	started := make(chan struct{})
	release := make(chan struct{})
	lookuper.EXPECT().Lookup(gomock.Any(), "quixotic").DoAndReturn(func(ctx context.Context, word string) (dictionary.WordRecord, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return dictionary.WordRecord{}, err
		}
		return dictionary.WordRecord{Word: word}, nil
	}).Times(1)
	historyLog.EXPECT().Record(gomock.Any(), "quixotic", "2024-03-01").Times(1)

	r := New(lookuper, mock_resolver.NewMockWordCatalog(ctrl), historyLog, WithClock(fixedClock()))

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := r.Resolve(ctxA, "quixotic")
		errA <- err
	}()
	<-started

	type result struct {
		record dictionary.WordRecord
		err    error
	}
	resultB := make(chan result, 1)
	go func() {
		record, err := r.Resolve(context.Background(), "quixotic")
		resultB <- result{record: record, err: err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	err := <-errA
	assert.ErrorIs(t, err, ErrResolutionFailed)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	b := <-resultB
	require.NoError(t, b.err)
	assert.Equal(t, "quixotic", b.record.Word)
}

type freeDictionary struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

func newFreeDictionary(t *testing.T, known ...string) *freeDictionary {
	t.Helper()
	d := &freeDictionary{}
	d.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		word := strings.TrimPrefix(r.URL.Path, "/entries/")
		d.mu.Lock()
		d.requests = append(d.requests, word)
		d.mu.Unlock()

		for _, k := range known {
			if k == word {
				_, _ = w.Write([]byte(`[{"word":"` + word + `","phonetic":"/` + word + `/","meanings":[{"partOfSpeech":"adjective","definitions":[{"definition":"about ` + word + `"}]}]}]`))
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
	}))
	t.Cleanup(d.Close)
	return d
}

func (d *freeDictionary) Requests() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.requests...)
}

type pipeline struct {
	resolver *Resolver
	cache    *wordcache.Cache
	store    kvstore.Store
}

func newPipeline(t *testing.T, endpoint string) pipeline {
	t.Helper()
	wordCatalog, err := catalog.New([]string{"ephemeral", "quixotic"})
	require.NoError(t, err)

	store := kvstore.NewMemory()
	cache := wordcache.New(store)
	client := dictionary.NewClient(dictionary.Config{
		Endpoint:   endpoint,
		Timeout:    time.Second,
		MaxRetries: dictionary.DefaultMaxRetries,
	}, cache, wordCatalog)

	return pipeline{
		resolver: New(client, wordCatalog, history.New(store), WithClock(fixedClock())),
		cache:    cache,
		store:    store,
	}
}

func TestResolver_EndToEnd(t *testing.T) {
	ctx := context.Background()

	t.Run("daily word is fetched once and recorded once", func(t *testing.T) {
		server := newFreeDictionary(t, "ephemeral", "quixotic")
		p := newPipeline(t, server.URL+"/entries")

		got, err := p.resolver.ResolveDailyWord(ctx)
		require.NoError(t, err)
		assert.Equal(t, dictionary.WordRecord{
			Word:     "quixotic",
			Phonetic: "/quixotic/",
			Meanings: []dictionary.Meaning{{
				PartOfSpeech: "adjective",
				Definitions:  []dictionary.Definition{{Text: "about quixotic"}},
			}},
		}, got)

		again, err := p.resolver.ResolveDailyWord(ctx)
		require.NoError(t, err)
		assert.Equal(t, got, again)

		assert.Equal(t, []string{"quixotic"}, server.Requests())
		assert.Equal(t, []history.Entry{{Date: "2024-03-01", Word: "quixotic"}}, p.resolver.History(ctx))
	})

	t.Run("unknown word falls back to another catalog word", func(t *testing.T) {
		server := newFreeDictionary(t, "ephemeral")
		p := newPipeline(t, server.URL+"/entries")

		got, err := p.resolver.Resolve(ctx, "quixotic")
		require.NoError(t, err)
		assert.Equal(t, "ephemeral", got.Word)
		assert.Equal(t, []string{"quixotic", "ephemeral"}, server.Requests())

		_, ok := p.cache.Lookup(ctx, "ephemeral")
		assert.True(t, ok)
		_, ok = p.cache.Lookup(ctx, "quixotic")
		assert.False(t, ok)
		assert.Equal(t, []history.Entry{{Date: "2024-03-01", Word: "ephemeral"}}, p.resolver.History(ctx))
	})

	t.Run("failure is reported without a history entry", func(t *testing.T) {
		server := newFreeDictionary(t)
		p := newPipeline(t, server.URL+"/entries")

		_, err := p.resolver.ResolveRandomWord(ctx, "")
		assert.ErrorIs(t, err, ErrResolutionFailed)
		assert.Len(t, server.Requests(), dictionary.DefaultMaxRetries+1)
		assert.Empty(t, p.resolver.History(ctx))

		_, err = p.store.Get(ctx, history.SnapshotKey)
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})
}
