package players

import (
	"context"
	"log/slog"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/providers"
	"github.com/preston-bernstein/football-players-service/internal/state"
)

// Service loads players into shared state and answers list/detail queries.
type Service struct {
	provider providers.PlayerProvider
	state    *state.Store
	logger   *slog.Logger
	now      func() time.Time

	loadMu sync.Mutex
	loads  int
}

// NewService constructs a Service over the provider and state store.
func NewService(provider providers.PlayerProvider, st *state.Store, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		state:    st,
		logger:   logger,
		now:      time.Now,
	}
}

// Load fetches all players and replaces the list in state.
// The loading flag is set while any load is in flight and cleared when the
// last one finishes, whatever its outcome.
func (s *Service) Load(ctx context.Context) error {
	s.beginLoad()
	defer s.endLoad()

	items, err := s.provider.FetchPlayers(ctx)
	if err != nil {
		logging.Error(logging.FromContext(ctx, s.logger), "error fetching players", err)
		return err
	}
	s.state.Dispatch(state.SetPlayers{Players: items})
	logging.Info(logging.FromContext(ctx, s.logger), "players loaded", slog.Int(logging.FieldCount, len(items)))
	return nil
}

func (s *Service) beginLoad() {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	s.loads++
	if s.loads == 1 {
		s.state.Dispatch(state.SetLoading{Loading: true})
	}
}

func (s *Service) endLoad() {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	s.loads--
	if s.loads == 0 {
		s.state.Dispatch(state.SetLoading{Loading: false})
	}
}

// Roster returns the full loaded player list.
func (s *Service) Roster() []players.Player {
	return s.state.Snapshot().Players
}

// Teams returns unique team names in first-seen order.
func (s *Service) Teams() []string {
	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([]string, 0)
	for _, p := range s.state.Snapshot().Players {
		if seen.Add(p.Team) {
			out = append(out, p.Team)
		}
	}
	return out
}

// PlayersByTeam returns the loaded players on team.
func (s *Service) PlayersByTeam(team string) []players.Player {
	return Filter(s.Roster(), Criteria{Team: &team})
}

// Visible applies the filters currently held in state.
func (s *Service) Visible() []players.Player {
	snap := s.state.Snapshot()
	return Filter(snap.Players, Criteria{Team: snap.SelectedTeam, Query: snap.SearchQuery})
}

// Search records the query and team filter in state as one transition and
// returns the players matching them.
func (s *Service) Search(query string, team *string) []players.Player {
	next := s.state.Dispatch(state.SetFilters{Query: query, Team: team})
	return Filter(next.Players, Criteria{Team: next.SelectedTeam, Query: next.SearchQuery})
}

// Detail fetches one player upstream and builds its view model.
func (s *Service) Detail(ctx context.Context, id string) (Detail, error) {
	p, err := s.provider.FetchPlayer(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return BuildDetail(p, s.now()), nil
}
