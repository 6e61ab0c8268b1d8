package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/wotd/internal/dictionary/freedictionary"
)

const (
	DefaultEndpoint   = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
)

var (
	// ErrNotFound is returned when the dictionary has no entry for a word.
	ErrNotFound = errors.New("word not found")
	// ErrLookupFailed is the terminal failure of Lookup.
	ErrLookupFailed = errors.New("lookup failed")
)

type Config struct {
	Endpoint string
	Timeout  time.Duration
	// MaxRetries is how many fallback words are tried after a not-found response.
	MaxRetries int
}

// Client looks words up in a remote dictionary through a RecordCache.
type Client struct {
	httpClient *resty.Client
	cache      RecordCache
	fallback   FallbackPicker
	maxRetries int
}

var _ Lookuper = (*Client)(nil)

func NewClient(config Config, cache RecordCache, fallback FallbackPicker) *Client {
	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxRetries := config.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		cache:      cache,
		fallback:   fallback,
		maxRetries: maxRetries,
	}
}

// Lookup returns the record for word. The cache is consulted once for the
// requested word; on a miss the dictionary is queried, and each not-found
// response substitutes another catalog word until maxRetries substitutions
// have been tried. The returned record is cached under its own word, which
// differs from the requested one after a substitution.
func (c *Client) Lookup(ctx context.Context, word string) (WordRecord, error) {
	if word == "" {
		return WordRecord{}, fmt.Errorf("%w: empty word", ErrLookupFailed)
	}
	if record, ok := c.cache.Lookup(ctx, word); ok {
		slog.Default().Debug("dictionary cache hit", "word", word)
		return record, nil
	}

	candidate := word
	for attempt := 0; ; attempt++ {
		record, err := c.fetch(ctx, candidate)
		if err == nil {
			c.cache.Store(ctx, record.Word, record)
			if attempt > 0 {
				slog.Default().Info("resolved a substitute word",
					"requested", word,
					"word", record.Word,
					"substitutions", attempt)
			}
			return record, nil
		}

		if !errors.Is(err, ErrNotFound) || attempt >= c.maxRetries {
			return WordRecord{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
		}

		next := c.fallback.RandomWord(candidate)
		slog.Default().Info("word is not in the dictionary, substituting",
			"word", candidate,
			"fallback", next,
			"attempt", attempt+1,
			"maxRetries", c.maxRetries)
		candidate = next
	}
}

func (c *Client) fetch(ctx context.Context, word string) (WordRecord, error) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get("/{word}")
	if err != nil {
		return WordRecord{}, fmt.Errorf("client.R.Get(%s) > %w", word, err)
	}

	if res.StatusCode() == http.StatusNotFound {
		var body freedictionary.NotFound
		if err := json.Unmarshal(res.Body(), &body); err == nil && body.Title != "" {
			slog.Default().Debug("dictionary has no entry", "word", word, "title", body.Title)
		}
		return WordRecord{}, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	if !res.IsSuccess() {
		return WordRecord{}, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	record, err := ParseResponse(res.Body())
	if err != nil {
		return WordRecord{}, fmt.Errorf("ParseResponse(%s) > %w", word, err)
	}
	return record, nil
}
