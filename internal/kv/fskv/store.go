// Package fskv persists each key as a JSON text file under a base directory.
package fskv

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/football-players-service/internal/kv"
)

const fileExt = ".json"

// Store keeps one file per key. Writes go to a temp file first and are renamed into place.
type Store struct {
	basePath string
}

var _ kv.Store = (*Store)(nil)

// New constructs a file-backed store rooted at basePath.
func New(basePath string) *Store {
	return &Store{basePath: basePath}
}

// BasePath exposes the store root (primarily for testing).
func (s *Store) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Get reads the file for key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := s.path(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Set writes value for key atomically.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Remove deletes the file for key; a missing file is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if s == nil {
		return "", errors.New("file store not configured")
	}
	if key == "" {
		return "", fmt.Errorf("key required")
	}
	return filepath.Join(s.basePath, url.PathEscape(key)+fileExt), nil
}
