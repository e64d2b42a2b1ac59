package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(envEnvFile, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(envConfigFile, "")
}

func mustLoad(t *testing.T) Config {
	t.Helper()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg := mustLoad(t)

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Storage.Driver != defaultStorage || cfg.Storage.FavoritesKey != defaultFavoritesKey {
		t.Fatalf("unexpected storage defaults %+v", cfg.Storage)
	}
	if cfg.PlayersAPI.Retries != defaultRetries || cfg.PlayersAPI.MinInterval != 0 {
		t.Fatalf("unexpected players api defaults %+v", cfg.PlayersAPI)
	}
	if cfg.Chat.Enabled() {
		t.Fatalf("expected chat disabled without api key")
	}
	if cfg.Chat.Model != defaultChatModel || cfg.Chat.RatePerMinute != defaultChatRate {
		t.Fatalf("unexpected chat defaults %+v", cfg.Chat)
	}
}

func TestLoadOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envProvider, "remote")
	t.Setenv(envPlayersURL, "http://example.com/players")
	t.Setenv(envPlayersRate, "250ms")
	t.Setenv(envPlayersRetry, "5")
	t.Setenv(envStorage, "sqlite")
	t.Setenv(envFavoritesKey, "favs")
	t.Setenv(envChatAPIKey, "secret-key")

	cfg := mustLoad(t)

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "remote" {
		t.Fatalf("expected provider remote, got %s", cfg.Provider)
	}
	if cfg.PlayersAPI.BaseURL != "http://example.com/players" {
		t.Fatalf("expected players url override, got %s", cfg.PlayersAPI.BaseURL)
	}
	if cfg.PlayersAPI.MinInterval != 250*time.Millisecond || cfg.PlayersAPI.Retries != 5 {
		t.Fatalf("unexpected players api overrides %+v", cfg.PlayersAPI)
	}
	if cfg.Storage.Driver != "sqlite" || cfg.Storage.FavoritesKey != "favs" {
		t.Fatalf("unexpected storage overrides %+v", cfg.Storage)
	}
	if !cfg.Chat.Enabled() {
		t.Fatalf("expected chat enabled with api key")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	isolate(t)
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := mustLoad(t)

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadFileSitsUnderEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[server]
port = "7000"
poll_interval = "5m"

[storage]
driver = "memory"

[chat]
model = "gemini-pro"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "7100")

	cfg := mustLoad(t)

	if cfg.Port != "7100" {
		t.Fatalf("expected env to win over file, got %s", cfg.Port)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected file poll interval, got %s", cfg.PollInterval)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("expected file storage driver, got %s", cfg.Storage.Driver)
	}
	if cfg.Chat.Model != "gemini-pro" {
		t.Fatalf("expected file chat model, got %s", cfg.Chat.Model)
	}
}

func TestLoadMetricsFromFile(t *testing.T) {
	isolate(t)
	t.Setenv(envMetricsOn, "")
	t.Setenv(envMetricsPort, "")
	t.Setenv(envOtelService, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[metrics]
enabled = false
port = "9191"
service_name = "players-staging"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	cfg := mustLoad(t)
	if cfg.Metrics.Enabled || cfg.Metrics.Port != "9191" || cfg.Metrics.ServiceName != "players-staging" {
		t.Fatalf("expected file metrics section applied, got %+v", cfg.Metrics)
	}

	t.Setenv(envMetricsOn, "true")
	if cfg := mustLoad(t); !cfg.Metrics.Enabled {
		t.Fatalf("expected METRICS_ENABLED to override the file")
	}
}

func TestLoadBadFileErrors(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\nport ="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadDotEnvSeedsUnsetVariables(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GEMINI_MODEL=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv(envEnvFile, path)
	t.Setenv(envChatModel, "")
	t.Cleanup(func() { os.Unsetenv(envChatModel) })
	os.Unsetenv(envChatModel)

	cfg := mustLoad(t)

	if cfg.Chat.Model != "from-dotenv" {
		t.Fatalf("expected model from .env, got %s", cfg.Chat.Model)
	}
}
