package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/football-players-service/internal/metrics"
)

// Telemetry stands in for metrics.Setup in server tests and records how it was used.
type Telemetry struct {
	Err      error
	Recorder *metrics.Recorder
	Handler  http.Handler

	Config    metrics.TelemetryConfig
	Setups    atomic.Int32
	Shutdowns atomic.Int32
}

// NewTelemetry returns a Telemetry that succeeds with a fresh recorder and an empty scrape handler.
func NewTelemetry() *Telemetry {
	return &Telemetry{Recorder: metrics.NewRecorder(), Handler: http.NewServeMux()}
}

// Setup has the signature of metrics.Setup.
func (t *Telemetry) Setup(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	t.Setups.Add(1)
	t.Config = cfg
	if t.Err != nil {
		return nil, nil, nil, t.Err
	}
	return t.Recorder, t.Handler, func(context.Context) error {
		t.Shutdowns.Add(1)
		return nil
	}, nil
}
