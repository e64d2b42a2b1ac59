package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxBackoff           = 5 * time.Second
)

// retryingProvider wraps a PlayerProvider with exponential backoff.
type retryingProvider struct {
	inner        PlayerProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
// ErrPlayerNotFound is never retried; a RateLimitError with Retry-After overrides the next delay.
func NewRetryingProvider(inner PlayerProvider, logger *slog.Logger, rec *metrics.Recorder, name string, maxAttempts int, initial time.Duration) PlayerProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      rec,
		providerName: name,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxInterval = maxBackoff
			b.MaxElapsedTime = 0
			return b
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	return retry(ctx, r, opFetchPlayers, func(ctx context.Context) ([]players.Player, error) {
		return r.inner.FetchPlayers(ctx)
	})
}

func (r *retryingProvider) FetchPlayer(ctx context.Context, id string) (players.Player, error) {
	return retry(ctx, r, opFetchPlayer, func(ctx context.Context) (players.Player, error) {
		return r.inner.FetchPlayer(ctx, id)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, fn func(context.Context) (T, error)) (T, error) {
	var result T
	if r.inner == nil {
		return result, ErrProviderUnavailable
	}

	policy := &retryAfterBackOff{BackOff: r.newBackOff()}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	operation := func() error {
		attempt++
		start := time.Now()
		val, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			result = val
			return nil
		}
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			policy.hint = rlErr.RetryAfter
		}
		if errors.Is(err, ErrPlayerNotFound) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logProviderEvent(ctx, r.logger, slog.LevelWarn, r.providerName, op, "provider retry",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			slog.Duration("delay", delay),
			slog.Any(logging.FieldError, err),
		)
	}

	if err := backoff.RetryNotify(operation, b, notify); err != nil {
		if !errors.Is(err, ErrPlayerNotFound) {
			logProviderEvent(ctx, r.logger, slog.LevelWarn, r.providerName, op, "provider fetch failed",
				slog.Int("attempts", attempt),
				slog.Any(logging.FieldError, err),
			)
		}
		var zero T
		return zero, err
	}
	return result, nil
}

// retryAfterBackOff prefers an upstream Retry-After hint over the computed delay, once.
type retryAfterBackOff struct {
	backoff.BackOff
	hint time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop {
		return next
	}
	if b.hint > 0 {
		next, b.hint = b.hint, 0
	}
	return next
}
