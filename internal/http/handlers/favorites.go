package handlers

import (
	nethttp "net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/logging"
)

type favoritesResponse struct {
	Favorites []players.Player `json:"favorites"`
	Count     int              `json:"count"`
}

type favoriteStatus struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// ListFavorites reloads favorites from storage and filters them by ?q=.
func (h *Handler) ListFavorites(w nethttp.ResponseWriter, r *nethttp.Request) {
	items, err := h.favorites.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")))
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load favorites", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, favoritesResponse{Favorites: items, Count: len(items)}, h.logger)
}

// AddFavorite stores the player snapshot in the request body.
func (h *Handler) AddFavorite(w nethttp.ResponseWriter, r *nethttp.Request) {
	var p players.Player
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player payload", h.logger)
		return
	}
	if strings.TrimSpace(p.ID) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "player id is required", h.logger)
		return
	}

	added, err := h.favorites.Add(r.Context(), p)
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to save favorite", h.logger)
		return
	}
	if !added {
		writeJSON(w, nethttp.StatusOK, map[string]any{"added": false, "id": p.ID}, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "favorite added", logging.PlayerID(p.ID))
	writeJSON(w, nethttp.StatusCreated, map[string]any{"added": true, "player": p}, h.logger)
}

// FavoriteStatus reports whether the id is a favorite.
func (h *Handler) FavoriteStatus(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := mux.Vars(r)["id"]
	writeJSON(w, nethttp.StatusOK, favoriteStatus{ID: id, Favorite: h.favorites.IsFavorite(r.Context(), id)}, h.logger)
}

// RemoveFavorite drops one favorite; unknown ids succeed.
func (h *Handler) RemoveFavorite(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := mux.Vars(r)["id"]
	if err := h.favorites.Remove(r.Context(), id); err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to remove favorite", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, favoriteStatus{ID: id, Favorite: false}, h.logger)
}

// ClearFavorites deletes every favorite.
func (h *Handler) ClearFavorites(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := h.favorites.Clear(r.Context()); err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "failed to clear favorites", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, favoritesResponse{Favorites: []players.Player{}, Count: 0}, h.logger)
}
