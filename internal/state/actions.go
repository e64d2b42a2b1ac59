package state

import "github.com/preston-bernstein/football-players-service/internal/domain/players"

// Action is a state transition accepted by Reduce.
type Action interface {
	Name() string
}

// SetPlayers replaces the full player list.
type SetPlayers struct{ Players []players.Player }

// SetFavorites replaces the favorites cache, typically after a reload.
type SetFavorites struct{ Favorites []players.Player }

// AddFavorite appends one player to the favorites cache.
type AddFavorite struct{ Player players.Player }

// RemoveFavorite drops every cached favorite with the id.
type RemoveFavorite struct{ ID string }

// ClearFavorites empties the favorites cache.
type ClearFavorites struct{}

// SetSelectedTeam sets the team filter. A nil Team clears it.
type SetSelectedTeam struct{ Team *string }

// SetSearchQuery sets the free-text query.
type SetSearchQuery struct{ Query string }

// SetFilters replaces the query and team filter in one transition.
type SetFilters struct {
	Query string
	Team  *string
}

// SetLoading toggles the loading flag.
type SetLoading struct{ Loading bool }

func (SetPlayers) Name() string      { return "SET_PLAYERS" }
func (SetFavorites) Name() string    { return "SET_FAVORITES" }
func (AddFavorite) Name() string     { return "ADD_FAVORITE" }
func (RemoveFavorite) Name() string  { return "REMOVE_FAVORITE" }
func (ClearFavorites) Name() string  { return "CLEAR_FAVORITES" }
func (SetSelectedTeam) Name() string { return "SET_SELECTED_TEAM" }
func (SetSearchQuery) Name() string  { return "SET_SEARCH_QUERY" }
func (SetFilters) Name() string      { return "SET_FILTERS" }
func (SetLoading) Name() string      { return "SET_LOADING" }

// TeamPtr is a convenience for building SetSelectedTeam and SetFilters actions.
func TeamPtr(team string) *string {
	return &team
}
