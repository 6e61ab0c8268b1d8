package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// SQLStore keeps values in the kv_entries table.
type SQLStore struct {
	db      *sqlx.DB
	dialect Dialect
}

func NewSQLStore(db *sqlx.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.GetContext(ctx, &value, "SELECT value FROM kv_entries WHERE name = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: db.GetContext(kv_entry) > %w", ErrStorageUnavailable, err)
	}
	return []byte(value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	query, err := s.upsertQuery()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("%w: db.ExecContext(upsert kv_entry) > %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *SQLStore) upsertQuery() (string, error) {
	switch s.dialect {
	case DialectMySQL:
		return `INSERT INTO kv_entries (name, value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value)`, nil
	case DialectSQLite:
		return `INSERT INTO kv_entries (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, nil
	default:
		return "", fmt.Errorf("%w: unsupported dialect %q", ErrStorageUnavailable, s.dialect)
	}
}
