package favorites

import (
	"context"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/logging"
)

// GetFavorites returns the favorite set, or an empty slice when it cannot be read.
func (s *Store) GetFavorites(ctx context.Context) []players.Player {
	items, err := s.Load(ctx)
	if err != nil {
		s.logFailure("error getting favorites", err)
		return []players.Player{}
	}
	return items
}

// AddToFavorites adds p and reports true only when the set changed and was persisted.
func (s *Store) AddToFavorites(ctx context.Context, p players.Player) bool {
	added, err := s.Add(ctx, p)
	if err != nil {
		s.logFailure("error adding to favorites", err, logging.PlayerID(p.ID))
		return false
	}
	return added
}

// RemoveFromFavorites removes id and reports false only on failure.
func (s *Store) RemoveFromFavorites(ctx context.Context, id string) bool {
	if err := s.Remove(ctx, id); err != nil {
		s.logFailure("error removing from favorites", err, logging.PlayerID(id))
		return false
	}
	return true
}

// IsFavorite checks membership against persisted data; failures read as false.
func (s *Store) IsFavorite(ctx context.Context, id string) bool {
	ok, err := s.Contains(ctx, id)
	if err != nil {
		s.logFailure("error checking favorite status", err, logging.PlayerID(id))
		return false
	}
	return ok
}

// ClearFavorites deletes all favorites and reports false only on failure.
func (s *Store) ClearFavorites(ctx context.Context) bool {
	if err := s.Clear(ctx); err != nil {
		s.logFailure("error clearing favorites", err)
		return false
	}
	return true
}

func (s *Store) logFailure(msg string, err error, args ...any) {
	logging.StorageError(s.logger, msg, s.key, err, args...)
}
