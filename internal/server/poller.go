package server

import (
	"context"

	"github.com/preston-bernstein/football-players-service/internal/poller"
)

// Poller is the roster refresh loop as the server drives it: Start on Run,
// Refresh for POST /players/refresh, Status for /ready, Stop on shutdown.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status() poller.Status
}

var _ Poller = (*poller.Poller)(nil)
