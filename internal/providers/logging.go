package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/football-players-service/internal/logging"
)

const (
	opFetchPlayers = "fetch players"
	opFetchPlayer  = "fetch player"

	fieldOperation = "operation"
)

// logProviderEvent logs through the request logger in ctx when one is set,
// tagging the provider and the upstream operation.
func logProviderEvent(ctx context.Context, fallback *slog.Logger, level slog.Level, provider, op, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider), slog.String(fieldOperation, op))
	logger.Log(ctx, level, msg, args...)
}
