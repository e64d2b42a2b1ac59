package providers

import (
	"context"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// PlayerProvider fetches players from an upstream source.
// FetchPlayer returns ErrPlayerNotFound when the id is unknown upstream.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context) ([]players.Player, error)
	FetchPlayer(ctx context.Context, id string) (players.Player, error)
}
