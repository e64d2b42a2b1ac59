// Package rediskv stores key-value pairs in Redis.
package rediskv

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/preston-bernstein/football-players-service/internal/kv"
)

// Store is a kv.Store backed by Redis string keys.
type Store struct {
	client *redis.Client
	prefix string
}

var _ kv.Store = (*Store)(nil)

// Config controls how the Redis client connects.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Open connects to Redis and verifies the connection with PING.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &Store{client: client, prefix: cfg.Prefix}, nil
}

// Get returns the value for key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", kv.ErrNotFound
	}
	return val, err
}

// Set stores value under key with no expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

// Remove deletes key.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Close closes the client connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
