package kvstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/at-ishikawa/wotd/schemas"
)

func TestSQLStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      string
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM kv_entries WHERE name = \\?").
					WithArgs("wotd_cache").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"quixotic":{}}`))
			},
			want: `{"quixotic":{}}`,
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM kv_entries WHERE name = \\?").
					WithArgs("wotd_cache").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT value FROM kv_entries WHERE name = \\?").
					WithArgs("wotd_cache").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			store := NewSQLStore(sqlx.NewDb(db, "mysql"), DialectMySQL)
			tt.setupMock(mock)

			got, err := store.Get(context.Background(), "wotd_cache")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, string(got))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLStore_Set(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:    "mysql upsert",
			dialect: DialectMySQL,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO kv_entries .* ON DUPLICATE KEY UPDATE").
					WithArgs("wotd_history", `[]`).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "sqlite upsert",
			dialect: DialectSQLite,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO kv_entries .* ON CONFLICT\\(name\\) DO UPDATE").
					WithArgs("wotd_history", `[]`).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:    "exec error",
			dialect: DialectMySQL,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO kv_entries").
					WithArgs("wotd_history", `[]`).
					WillReturnError(errors.New("disk full"))
			},
			wantErr: ErrStorageUnavailable,
		},
		{
			name:      "unsupported dialect",
			dialect:   Dialect("oracle"),
			setupMock: func(mock sqlmock.Sqlmock) {},
			wantErr:   ErrStorageUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			store := NewSQLStore(sqlx.NewDb(db, string(tt.dialect)), tt.dialect)
			tt.setupMock(mock)

			err = store.Set(context.Background(), "wotd_history", []byte(`[]`))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLStore_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := sqlx.Open("sqlite", filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	migration, err := schemas.Migrations.ReadFile("migrations/sqlite/001_create_kv_entries.sql")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, string(migration))
	require.NoError(t, err)

	store := NewSQLStore(db, DialectSQLite)

	_, err = store.Get(ctx, "wotd_cache")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "wotd_cache", []byte(`{"a":1}`)))
	require.NoError(t, store.Set(ctx, "wotd_cache", []byte(`{"b":2}`)))

	got, err := store.Get(ctx, "wotd_cache")
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, string(got))
}
