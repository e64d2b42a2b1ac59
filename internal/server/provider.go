package server

import (
	"log/slog"

	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/providers"
	"github.com/preston-bernstein/football-players-service/internal/providers/fixture"
	"github.com/preston-bernstein/football-players-service/internal/providers/remote"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.PlayerProvider {
	switch cfg.Provider {
	case providerFixture, "":
		return fixture.New()
	case providerRemote:
		if cfg.PlayersAPI.BaseURL == "" {
			if logger != nil {
				logger.Warn("remote provider selected without PLAYERS_API_URL, falling back to fixture")
			}
			return fixture.New()
		}
		return remote.NewClient(remote.Config{BaseURL: cfg.PlayersAPI.BaseURL})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
