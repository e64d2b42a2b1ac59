package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/kv"
	"github.com/preston-bernstein/football-players-service/internal/logging"
)

// DefaultKey is the storage slot used when none is configured.
const DefaultKey = "favorites"

var (
	// ErrStorage wraps failures of the underlying key-value store.
	ErrStorage = errors.New("favorites: storage failure")
	// ErrCorrupt reports a persisted value that is not a JSON player array.
	ErrCorrupt = errors.New("favorites: malformed persisted data")
)

// Store manages the favorite set persisted under one key.
type Store struct {
	kv     kv.Store
	key    string
	logger *slog.Logger
}

// New constructs a Store over the given key-value store. An empty key uses DefaultKey.
func New(store kv.Store, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: store, key: key, logger: logger}
}

// Key returns the storage slot name.
func (s *Store) Key() string {
	return s.key
}

// Load reads and decodes the favorite set. An absent slot is an empty set.
func (s *Store) Load(ctx context.Context) ([]players.Player, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		return []players.Player{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrStorage, s.key, err)
	}
	if raw == "" {
		return []players.Player{}, nil
	}

	var items []players.Player
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrCorrupt, s.key, err)
	}
	if items == nil {
		items = []players.Player{}
	}
	return items, nil
}

// Add appends p unless a favorite with the same id exists.
// It reports whether the set changed; duplicates are rejected, not updated.
func (s *Store) Add(ctx context.Context, p players.Player) (bool, error) {
	items, err := s.loadForWrite(ctx)
	if err != nil {
		return false, err
	}
	if indexOf(items, p.ID) >= 0 {
		return false, nil
	}
	if err := s.save(ctx, append(items, p)); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops the favorite with id. Removing a missing id still rewrites the set and succeeds.
func (s *Store) Remove(ctx context.Context, id string) error {
	items, err := s.loadForWrite(ctx)
	if err != nil {
		return err
	}
	kept := make([]players.Player, 0, len(items))
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.save(ctx, kept)
}

// Contains reports whether id is in the persisted set.
func (s *Store) Contains(ctx context.Context, id string) (bool, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(items, id) >= 0, nil
}

// Clear deletes the whole slot.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("%w: remove %q: %w", ErrStorage, s.key, err)
	}
	return nil
}

// loadForWrite treats a corrupt slot as empty so the next write replaces it.
func (s *Store) loadForWrite(ctx context.Context) ([]players.Player, error) {
	items, err := s.Load(ctx)
	if errors.Is(err, ErrCorrupt) {
		logging.StorageWarn(s.logger, "discarding malformed favorites", s.key, err)
		return []players.Player{}, nil
	}
	return items, err
}

func (s *Store) save(ctx context.Context, items []players.Player) error {
	if items == nil {
		items = []players.Player{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("%w: write %q: %w", ErrStorage, s.key, err)
	}
	return nil
}

func indexOf(items []players.Player, id string) int {
	for i, p := range items {
		if p.ID == id {
			return i
		}
	}
	return -1
}
