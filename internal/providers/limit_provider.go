package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// rateLimitedProvider wraps a PlayerProvider and spaces upstream calls at least interval apart.
type rateLimitedProvider struct {
	next     PlayerProvider
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a PlayerProvider that limits calls to one per interval.
// Calls block until a token is available or ctx is done.
func NewRateLimitedProvider(next PlayerProvider, interval time.Duration, logger *slog.Logger) PlayerProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	if err := p.wait(ctx, opFetchPlayers); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx)
}

func (p *rateLimitedProvider) FetchPlayer(ctx context.Context, id string) (players.Player, error) {
	if err := p.wait(ctx, opFetchPlayer); err != nil {
		return players.Player{}, err
	}
	return p.next.FetchPlayer(ctx, id)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p.next == nil {
		logProviderEvent(ctx, p.logger, slog.LevelWarn, "rate-limited", op, "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logProviderEvent(ctx, p.logger, slog.LevelWarn, "rate-limited", op, "rate-limited fetch canceled")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
