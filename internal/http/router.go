package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-players-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a gorilla/mux router.
func NewRouter(h *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(h.MethodNotAllowed)

	r.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(nethttp.MethodGet)
	r.HandleFunc("/state", h.State).Methods(nethttp.MethodGet)

	r.HandleFunc("/players", h.ListPlayers).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/refresh", h.RefreshPlayers).Methods(nethttp.MethodPost)
	r.HandleFunc("/players/visible", h.VisiblePlayers).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/{id}", h.PlayerDetail).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams", h.Teams).Methods(nethttp.MethodGet)
	r.HandleFunc("/teams/{team}/players", h.TeamPlayers).Methods(nethttp.MethodGet)

	r.HandleFunc("/favorites", h.ListFavorites).Methods(nethttp.MethodGet)
	r.HandleFunc("/favorites", h.AddFavorite).Methods(nethttp.MethodPost)
	r.HandleFunc("/favorites", h.ClearFavorites).Methods(nethttp.MethodDelete)
	r.HandleFunc("/favorites/{id}", h.FavoriteStatus).Methods(nethttp.MethodGet)
	r.HandleFunc("/favorites/{id}", h.RemoveFavorite).Methods(nethttp.MethodDelete)

	r.HandleFunc("/chat", h.ChatHistory).Methods(nethttp.MethodGet)
	r.HandleFunc("/chat", h.SendChat).Methods(nethttp.MethodPost)
	r.HandleFunc("/chat", h.ClearChat).Methods(nethttp.MethodDelete)
	return r
}
