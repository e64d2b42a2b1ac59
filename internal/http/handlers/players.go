package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/domain/teams"
	"github.com/preston-bernstein/football-players-service/internal/logging"
	"github.com/preston-bernstein/football-players-service/internal/providers"
)

type playerView struct {
	players.Player
	IsFavorite bool `json:"isFavorite"`
}

type playersResponse struct {
	Players []playerView `json:"players"`
	Count   int          `json:"count"`
}

// ListPlayers returns players matching ?q= and ?team=, recording both filters in state.
func (h *Handler) ListPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	var team *string
	if raw := strings.TrimSpace(q.Get("team")); raw != "" {
		team = &raw
	}

	items := h.players.Search(query, team)
	logging.Info(loggerFromContext(r, h.logger), "served players",
		slog.Int(logging.FieldCount, len(items)),
	)
	writeJSON(w, nethttp.StatusOK, h.playersPayload(items), h.logger)
}

// RefreshPlayers reloads the list from the upstream provider.
func (h *Handler) RefreshPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.refreshFn == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}
	if err := h.refreshFn(r.Context()); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "player refresh failed", slog.Any("error", err))
		writeError(w, r, nethttp.StatusBadGateway, "failed to load players", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.playersPayload(h.players.Roster()), h.logger)
}

// PlayerDetail returns the detail view for one player.
func (h *Handler) PlayerDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	detail, err := h.players.Detail(r.Context(), id)
	if errors.Is(err, providers.ErrPlayerNotFound) {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "player detail failed",
			logging.PlayerID(id),
			slog.Any("error", err),
		)
		writeError(w, r, nethttp.StatusBadGateway, "failed to load player", h.logger)
		return
	}
	if h.favorites != nil {
		detail.IsFavorite = h.favorites.IsFavorite(r.Context(), id)
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

// Teams returns unique team names in first-seen order, or the roster grouped by team with ?grouped=true.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if grouped, _ := strconv.ParseBool(r.URL.Query().Get("grouped")); grouped {
		writeJSON(w, nethttp.StatusOK, map[string][]teams.Team{"teams": teams.GroupPlayers(h.players.Roster())}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string][]string{"teams": h.players.Teams()}, h.logger)
}

// TeamPlayers returns the loaded players of one team.
func (h *Handler) TeamPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	team := mux.Vars(r)["team"]
	writeJSON(w, nethttp.StatusOK, h.playersPayload(h.players.PlayersByTeam(team)), h.logger)
}

// VisiblePlayers returns the list filtered by the query and team last recorded in state.
func (h *Handler) VisiblePlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.playersPayload(h.players.Visible()), h.logger)
}

func (h *Handler) playersPayload(items []players.Player) playersResponse {
	ids := map[string]bool{}
	if h.favorites != nil {
		for _, id := range h.favorites.IDs().ToSlice() {
			ids[id] = true
		}
	}
	views := make([]playerView, 0, len(items))
	for _, p := range items {
		views = append(views, playerView{Player: p, IsFavorite: ids[p.ID]})
	}
	return playersResponse{Players: views, Count: len(views)}
}
