// Package kvstore provides the best-effort key-value persistence that backs
// the word cache and the history log.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrNotFound           = errors.New("key not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Store persists whole values under string keys.
// Get returns ErrNotFound for a missing key. Any backend failure is wrapped
// with ErrStorageUnavailable.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ReadJSON decodes the snapshot stored under key into v.
// It reports false when the snapshot is missing, cannot be read or is not
// valid JSON for v, in which case v should be treated as empty.
func ReadJSON(ctx context.Context, store Store, key string, v any) bool {
	data, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Default().Debug("failed to read snapshot", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Default().Debug("ignoring malformed snapshot", "key", key, "error", err)
		return false
	}
	return true
}

// WriteJSON encodes v and stores it under key as a single write.
func WriteJSON(ctx context.Context, store Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: json.Marshal > %w", ErrStorageUnavailable, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("store.Set(%s) > %w", key, err)
	}
	return nil
}
