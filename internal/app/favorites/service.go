package favorites

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	appplayers "github.com/preston-bernstein/football-players-service/internal/app/players"
	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/favorites"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/metrics"
	"github.com/preston-bernstein/football-players-service/internal/state"
)

const (
	opAdd    = "add"
	opRemove = "remove"
	opClear  = "clear"
)

// Service keeps the persisted favorite set and the state cache in step.
// Each mutation writes storage first and dispatches the matching action only
// when the write succeeded. Mutations are serialized by mu.
type Service struct {
	mu      sync.Mutex
	store   *favorites.Store
	state   *state.Store
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewService constructs a Service.
func NewService(store *favorites.Store, st *state.Store, rec *metrics.Recorder, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		state:   st,
		metrics: rec,
		logger:  logger,
	}
}

// Add persists p and appends it to the cache. It reports false for a duplicate.
func (s *Service) Add(ctx context.Context, p players.Player) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.store.Add(ctx, p)
	s.metrics.RecordFavoritesMutation(opAdd, err)
	if err != nil {
		s.logFailure(ctx, "error adding to favorites", err, logging.PlayerID(p.ID))
		return false, err
	}
	if added {
		s.state.Dispatch(state.AddFavorite{Player: p})
	}
	return added, nil
}

// Remove drops id from storage and the cache. Removing a non-member succeeds.
func (s *Service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Remove(ctx, id)
	s.metrics.RecordFavoritesMutation(opRemove, err)
	if err != nil {
		s.logFailure(ctx, "error removing from favorites", err, logging.PlayerID(id))
		return err
	}
	s.state.Dispatch(state.RemoveFavorite{ID: id})
	return nil
}

// Clear deletes every favorite.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Clear(ctx)
	s.metrics.RecordFavoritesMutation(opClear, err)
	if err != nil {
		s.logFailure(ctx, "error clearing favorites", err)
		return err
	}
	s.state.Dispatch(state.ClearFavorites{})
	return nil
}

// Reload replaces the cache with the persisted set. Malformed data reloads as empty.
func (s *Service) Reload(ctx context.Context) ([]players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.store.Load(ctx)
	if errors.Is(err, favorites.ErrCorrupt) {
		logging.StorageWarn(logging.FromContext(ctx, s.logger), "favorites unreadable, reloading as empty",
			s.store.Key(), err)
		items, err = []players.Player{}, nil
	}
	if err != nil {
		s.logFailure(ctx, "error loading favorites", err)
		return nil, err
	}
	s.state.Dispatch(state.SetFavorites{Favorites: items})
	return items, nil
}

// IsFavorite answers from the cache and falls back to storage on a miss.
func (s *Service) IsFavorite(ctx context.Context, id string) bool {
	if s.IDs().Contains(id) {
		return true
	}
	return s.store.IsFavorite(ctx, id)
}

// IDs returns the ids currently cached as favorites.
func (s *Service) IDs() mapset.Set[string] {
	ids := mapset.NewThreadUnsafeSet[string]()
	for _, p := range s.state.Snapshot().Favorites {
		ids.Add(p.ID)
	}
	return ids
}

// List reloads from storage and returns favorites matching query.
func (s *Service) List(ctx context.Context, query string) ([]players.Player, error) {
	items, err := s.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return appplayers.FilterFavorites(items, query), nil
}

func (s *Service) logFailure(ctx context.Context, msg string, err error, args ...any) {
	logging.StorageError(logging.FromContext(ctx, s.logger), msg, s.store.Key(), err, args...)
}
