package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/at-ishikawa/wotd/internal/catalog"
	"github.com/at-ishikawa/wotd/internal/config"
	"github.com/at-ishikawa/wotd/internal/database"
	"github.com/at-ishikawa/wotd/internal/dictionary"
	"github.com/at-ishikawa/wotd/internal/history"
	"github.com/at-ishikawa/wotd/internal/kvstore"
	"github.com/at-ishikawa/wotd/internal/resolver"
	"github.com/at-ishikawa/wotd/internal/wordcache"
)

const databaseRetryDelay = 2 * time.Second

// Pipeline holds the components behind a Resolver.
type Pipeline struct {
	Catalog  *catalog.Catalog
	Cache    *wordcache.Cache
	History  *history.Log
	Resolver *resolver.Resolver

	closers []func() error
}

type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	resolverOptions []resolver.Option
	catalogOptions  []catalog.Option
}

// WithResolverOptions passes options through to resolver.New.
func WithResolverOptions(opts ...resolver.Option) PipelineOption {
	return func(o *pipelineOptions) {
		o.resolverOptions = append(o.resolverOptions, opts...)
	}
}

// WithCatalogOptions passes options through to the catalog constructor.
func WithCatalogOptions(opts ...catalog.Option) PipelineOption {
	return func(o *pipelineOptions) {
		o.catalogOptions = append(o.catalogOptions, opts...)
	}
}

func NewPipeline(ctx context.Context, cfg *config.Config, opts ...PipelineOption) (*Pipeline, error) {
	var options pipelineOptions
	for _, opt := range opts {
		opt(&options)
	}

	wordCatalog, err := LoadCatalog(cfg.Catalog, options.catalogOptions...)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{Catalog: wordCatalog}
	store, err := p.openStore(ctx, cfg.Storage, cfg.Database)
	if err != nil {
		return nil, errors.Join(err, p.Close(ctx))
	}

	p.Cache = wordcache.New(store, wordcache.WithMaxEntries(cfg.Storage.CacheMaxEntries))
	p.History = history.New(store, history.WithMaxEntries(cfg.Storage.HistoryMaxEntries))
	client := dictionary.NewClient(dictionary.Config{
		Endpoint:   cfg.Dictionary.Endpoint,
		Timeout:    cfg.Dictionary.Timeout(),
		MaxRetries: cfg.Dictionary.MaxRetries,
	}, p.Cache, wordCatalog)
	p.Resolver = resolver.New(client, wordCatalog, p.History, options.resolverOptions...)

	slog.Default().Debug("pipeline is ready",
		"backend", cfg.Storage.Backend,
		"catalogSize", wordCatalog.Len(),
		"endpoint", cfg.Dictionary.Endpoint)
	return p, nil
}

// Close releases the storage backend. It can be registered as a shutdown hook.
func (p *Pipeline) Close(_ context.Context) error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

// LoadCatalog reads the configured words file, or the embedded list when none is set.
func LoadCatalog(cfg config.CatalogConfig, opts ...catalog.Option) (*catalog.Catalog, error) {
	if cfg.WordsFile == "" {
		c, err := catalog.Default(opts...)
		if err != nil {
			return nil, fmt.Errorf("catalog.Default > %w", err)
		}
		return c, nil
	}
	c, err := catalog.Load(cfg.WordsFile, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load(%s) > %w", cfg.WordsFile, err)
	}
	return c, nil
}

func (p *Pipeline) openStore(ctx context.Context, storage config.StorageConfig, dbConfig config.DatabaseConfig) (kvstore.Store, error) {
	switch storage.Backend {
	case config.BackendMemory:
		return kvstore.NewMemory(), nil
	case config.BackendFile:
		return kvstore.NewFileStore(storage.Directory), nil
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(storage.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll > %w", err)
		}
		db, err := database.OpenSQLite(storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("database.OpenSQLite > %w", err)
		}
		p.closers = append(p.closers, db.Close)
		if err := database.Migrate(ctx, db, string(kvstore.DialectSQLite)); err != nil {
			return nil, fmt.Errorf("database.Migrate > %w", err)
		}
		return kvstore.NewSQLStore(db, kvstore.DialectSQLite), nil
	case config.BackendMySQL:
		db, err := database.Open(dbConfig)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		p.closers = append(p.closers, db.Close)
		if err := database.WaitReady(ctx, db, dbConfig.ConnectAttempts, databaseRetryDelay); err != nil {
			return nil, fmt.Errorf("database.WaitReady > %w", err)
		}
		if err := database.Migrate(ctx, db, string(kvstore.DialectMySQL)); err != nil {
			return nil, fmt.Errorf("database.Migrate > %w", err)
		}
		return kvstore.NewSQLStore(db, kvstore.DialectMySQL), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", storage.Backend)
	}
}
