// File-backed adapter: one JSON document per key under DataDir, written with
// the temp-file-then-rename pattern so a crashed save never leaves a partial
// value.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

const (
	fileExt     = ".json"
	dataDirMode = 0o755
)

// FileAdapter stores each key as DataDir/<key>.json.
type FileAdapter struct {
	dataDir string
}

var _ Adapter = (*FileAdapter)(nil)

// NewFileAdapter creates the data directory if needed and returns an adapter
// rooted there.
func NewFileAdapter(dataDir string) (*FileAdapter, error) {
	if err := os.MkdirAll(dataDir, dataDirMode); err != nil {
		return nil, &types.PersistenceError{Op: "open", Key: dataDir, Err: err}
	}
	return &FileAdapter{dataDir: dataDir}, nil
}

// Load reads the value stored for key. A missing file maps to ErrKeyAbsent.
func (a *FileAdapter) Load(key string) ([]byte, error) {
	path, err := a.keyPath(key)
	if err != nil {
		return nil, loadErr(key, err)
	}
	value, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %q: %w", key, types.ErrKeyAbsent)
		}
		return nil, loadErr(key, err)
	}
	return value, nil
}

// Save replaces the value for key atomically.
func (a *FileAdapter) Save(key string, value []byte) error {
	path, err := a.keyPath(key)
	if err != nil {
		return saveErr(key, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(value)); err != nil {
		return saveErr(key, err)
	}
	return nil
}

// Remove deletes the key. Removing an absent key succeeds.
func (a *FileAdapter) Remove(key string) error {
	path, err := a.keyPath(key)
	if err != nil {
		return removeErr(key, err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return removeErr(key, err)
	}
	return nil
}

// Close is a no-op; the adapter holds no open handles between calls.
func (a *FileAdapter) Close() error { return nil }

// keyPath maps a key to its file path. Keys must be simple names; path
// separators and traversal are rejected so a key can never escape DataDir.
func (a *FileAdapter) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(a.dataDir, key+fileExt), nil
}
