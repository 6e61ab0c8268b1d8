package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps each key in its own JSON file under a directory.
type FileStore struct {
	rootDir string
}

func NewFileStore(directory string) *FileStore {
	return &FileStore{
		rootDir: directory,
	}
}

func (f *FileStore) filePath(key string) string {
	return filepath.Join(f.rootDir, key+".json")
}

func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	contents, err := os.ReadFile(f.filePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: os.ReadFile > %w", ErrStorageUnavailable, err)
	}
	return contents, nil
}

// Set replaces the file through a rename so readers never see a partial write.
func (f *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(f.rootDir, 0755); err != nil {
		return fmt.Errorf("%w: os.MkdirAll > %w", ErrStorageUnavailable, err)
	}

	file, err := os.CreateTemp(f.rootDir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: os.CreateTemp > %w", ErrStorageUnavailable, err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(value); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w: file.Write > %w", ErrStorageUnavailable, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: file.Close > %w", ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpPath, f.filePath(key)); err != nil {
		return fmt.Errorf("%w: os.Rename > %w", ErrStorageUnavailable, err)
	}
	return nil
}
