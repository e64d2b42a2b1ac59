// Package kv defines the string key-value persistence primitive used for
// favorites and chat history, plus an in-memory implementation.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("kv: key not found")

// Store is a durable string key-value store. Values are UTF-8 JSON text.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Closer is implemented by backends that hold connections or files.
type Closer interface {
	Close() error
}

// Close releases the store when it supports closing.
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
