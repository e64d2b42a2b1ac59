package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/football-players-service/internal/testutil"
)

// isolateEnv keeps a developer's .env or config file out of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("PROVIDER", "fixture")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PORT", "0")
}

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestRunRejectsMalformedConfigFile(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "players.toml")
	if err := os.WriteFile(path, []byte("[server\nport = "), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	logger, _ := testutil.NewBufferLogger()

	err := run(context.Background(), func() {}, logger)
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestRunFailsWhenStorageUnreachable(t *testing.T) {
	isolateEnv(t)
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	logger, _ := testutil.NewBufferLogger()

	err := run(context.Background(), func() {}, logger)
	if err == nil || !strings.Contains(err.Error(), "start server") {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestRunReturnsAfterCancel(t *testing.T) {
	isolateEnv(t)
	logger, buf := testutil.NewBufferLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, cancel, logger) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not return after cancel")
	}
	if !strings.Contains(buf.String(), "provider=fixture") {
		t.Fatalf("expected startup log, got %s", buf.String())
	}
}
