package testutil

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// StubProvider is a test double for providers.PlayerProvider.
type StubProvider struct {
	Players  []players.Player
	Err      error
	ByIDErr  error
	Calls    atomic.Int32
	ByIDHits atomic.Int32
}

// FetchPlayers returns the configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return players.CloneAll(s.Players), nil
}

// FetchPlayer looks the id up in Players; a miss returns ByIDErr.
func (s *StubProvider) FetchPlayer(ctx context.Context, id string) (players.Player, error) {
	_ = ctx
	s.ByIDHits.Add(1)
	if s.Err != nil {
		return players.Player{}, s.Err
	}
	for _, p := range s.Players {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return players.Player{}, s.ByIDErr
}
