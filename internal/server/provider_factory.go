package server

import (
	"log/slog"

	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/metrics"
	"github.com/preston-bernstein/football-players-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.PlayerProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap applies the optional limiter and the retry policy to base.
func (f providerFactory) wrap(cfg config.Config, base providers.PlayerProvider) providers.PlayerProvider {
	name := providerName(cfg.Provider, base)
	next := base
	if cfg.PlayersAPI.MinInterval > 0 {
		next = providers.NewRateLimitedProvider(next, cfg.PlayersAPI.MinInterval, f.logger)
	}
	return providers.NewRetryingProvider(next, f.logger, f.metrics, name, cfg.PlayersAPI.Retries, 0)
}
