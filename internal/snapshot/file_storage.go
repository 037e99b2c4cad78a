package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"currency-converter/internal"
)

const DefaultPath = "currency_cache.json"

// FileStorage keeps the rate snapshot in a single JSON file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	if path == "" {
		path = DefaultPath
	}
	return &FileStorage{path: path}
}

func (f *FileStorage) Path() string { return f.path }

func (f *FileStorage) Load(ctx context.Context) (*internal.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &internal.CacheError{Path: f.path, Cause: internal.ErrSnapshotNotFound}
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var snap internal.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := requireFields(data, "rates", "last_update"); err != nil {
		return nil, err
	}
	if snap.Rates == nil {
		return nil, errors.New("snapshot rates are null")
	}
	return &snap, nil
}

// requireFields checks that every key is present in the document. A null
// value counts as present.
func requireFields(data []byte, keys ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("snapshot has no %s field", key)
		}
	}
	return nil
}

// Save replaces the snapshot atomically: the document is written to a temp
// file next to the target and renamed over it.
func (f *FileStorage) Save(ctx context.Context, snap internal.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

var _ internal.SnapshotStorage = (*FileStorage)(nil)
