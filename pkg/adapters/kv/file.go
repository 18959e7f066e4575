package kv

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// fileExt is appended to keys to build filenames; every blob is JSON.
const fileExt = ".json"

// File is a directory-backed KV: one file per key, written atomically
// (temp file + fsync + rename) so a crash never leaves a torn blob.
type File struct {
	// Path is the directory holding the key files.
	Path string

	logger *slog.Logger
}

// FileOption configures a File store.
type FileOption func(*File)

// WithFileLogger sets the logger used by the watcher.
func WithFileLogger(logger *slog.Logger) FileOption {
	return func(f *File) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFile creates a directory-backed KV rooted at path, creating the
// directory if needed.
func NewFile(path string, opts ...FileOption) (*File, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	f := &File{
		Path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// filename maps a key to its on-disk path. Keys must not traverse out of
// the store directory.
func (f *File) filename(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "/") || strings.Contains(key, string(os.PathSeparator)) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key: %s", key)
	}
	return filepath.Join(f.Path, key+fileExt), nil
}

// keyFromFilename is the inverse of filename for watcher events.
// Returns "" for paths that do not look like key files.
func (f *File) keyFromFilename(path string) string {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, fileExt) {
		return ""
	}
	if strings.HasPrefix(base, TempFilePrefix) {
		return ""
	}
	return strings.TrimSuffix(base, fileExt)
}

// Get implements KV.
func (f *File) Get(key string) ([]byte, error) {
	name, err := f.filename(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Set implements KV.
func (f *File) Set(key string, value []byte) error {
	name, err := f.filename(key)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(name, value, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete implements KV.
func (f *File) Delete(key string) error {
	name, err := f.filename(key)
	if err != nil {
		return err
	}
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
