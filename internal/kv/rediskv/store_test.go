package rediskv

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/football-players-service/internal/kv"
)

// Runs only against a real server: REDIS_TEST_ADDR=localhost:6379 go test ./...
func TestStoreAgainstRedis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	s, err := Open(ctx, Config{Addr: addr, Prefix: "test:" + uuid.NewString() + ":"})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(ctx, "favorites")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "favorites", `[]`))
	got, err := s.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	require.NoError(t, s.Remove(ctx, "favorites"))
	_, err = s.Get(ctx, "favorites")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestOpenFailsWithoutServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Open(ctx, Config{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
