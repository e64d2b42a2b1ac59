package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	appfavorites "github.com/preston-bernstein/football-players-service/internal/app/favorites"
	appplayers "github.com/preston-bernstein/football-players-service/internal/app/players"
	"github.com/preston-bernstein/football-players-service/internal/chat"
	"github.com/preston-bernstein/football-players-service/internal/poller"
	"github.com/preston-bernstein/football-players-service/internal/state"
)

// Deps groups the services the handlers serve.
type Deps struct {
	Players   *appplayers.Service
	Favorites *appfavorites.Service
	Chat      *chat.Service
	State     *state.Store
	Logger    *slog.Logger
	// StatusFn reports poller health for /ready; nil means always ready.
	StatusFn func() poller.Status
	// RefreshFn reloads players on demand; defaults to Players.Load.
	RefreshFn func(ctx context.Context) error
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	players   *appplayers.Service
	favorites *appfavorites.Service
	chat      *chat.Service
	state     *state.Store
	logger    *slog.Logger
	statusFn  func() poller.Status
	refreshFn func(ctx context.Context) error
}

// NewHandler constructs a Handler with defaults.
func NewHandler(d Deps) *Handler {
	refresh := d.RefreshFn
	if refresh == nil && d.Players != nil {
		refresh = d.Players.Load
	}
	return &Handler{
		players:   d.Players,
		favorites: d.Favorites,
		chat:      d.Chat,
		state:     d.State,
		logger:    d.Logger,
		statusFn:  d.StatusFn,
		refreshFn: refresh,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic once players have loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// State returns a snapshot of the shared application state.
func (h *Handler) State(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.state == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "state not configured", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.state.Snapshot(), h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
