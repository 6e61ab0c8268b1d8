package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_filePath(t *testing.T) {
	store := NewFileStore("data")
	assert.Equal(t, filepath.Join("data", "wotd_cache.json"), store.filePath("wotd_cache"))
}

func TestFileStore_GetSet(t *testing.T) {
	ctx := context.Background()
	rootDir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(rootDir)

	_, err := store.Get(ctx, "wotd_history")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "wotd_history", []byte(`[{"date":"2024-01-01","word":"ephemeral"}]`)))
	got, err := store.Get(ctx, "wotd_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"date":"2024-01-01","word":"ephemeral"}]`, string(got))

	require.NoError(t, store.Set(ctx, "wotd_history", []byte(`[]`)))
	got, err = store.Get(ctx, "wotd_history")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	entries, err := os.ReadDir(rootDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "wotd_history.json", entries[0].Name())
}

func TestFileStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	// A regular file where the directory should be
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	store := NewFileStore(blocked)
	err := store.Set(ctx, "wotd_cache", []byte(`{}`))
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = store.Get(ctx, "wotd_cache")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
