package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/kv"
	"github.com/preston-bernstein/football-players-service/internal/kv/fskv"
	"github.com/preston-bernstein/football-players-service/internal/kv/rediskv"
	"github.com/preston-bernstein/football-players-service/internal/kv/sqlitekv"
)

const sqliteFileName = "players.db"

// openStorage opens the key-value backend named by cfg.Driver.
func openStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (kv.Store, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch driver {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "file", "":
		return fskv.New(cfg.Path), nil
	case "sqlite":
		fileName := cfg.Path
		if filepath.Ext(fileName) == "" {
			fileName = filepath.Join(fileName, sqliteFileName)
		}
		if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
		store, err := sqlitekv.Open(ctx, fileName)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage %s: %w", fileName, err)
		}
		return store, nil
	case "redis":
		store, err := rediskv.Open(ctx, rediskv.Config{Addr: cfg.RedisAddr})
		if err != nil {
			return nil, fmt.Errorf("open redis storage %s: %w", cfg.RedisAddr, err)
		}
		return store, nil
	default:
		if logger != nil {
			logger.Warn("unknown storage driver, falling back to memory", slog.String("driver", cfg.Driver))
		}
		return kv.NewMemoryStore(), nil
	}
}
