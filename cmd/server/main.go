package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/football-players-service/internal/config"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "football-players-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if err := run(ctx, stop, logger); err != nil {
		stop()
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
	stop()
}

// run loads configuration, opens storage and serves until ctx is cancelled.
func run(ctx context.Context, stop context.CancelFunc, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Info("starting",
		slog.String(logging.FieldProvider, cfg.Provider),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("port", cfg.Port),
	)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	srv.Run(ctx, stop)
	return nil
}
