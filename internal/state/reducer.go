package state

import "github.com/preston-bernstein/football-players-service/internal/domain/players"

// Reduce returns the state that results from applying a to s.
// It never mutates s; touched slices are replaced with fresh copies.
// Unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SetPlayers:
		s.Players = nonNil(players.CloneAll(act.Players))
	case SetFavorites:
		s.Favorites = nonNil(players.CloneAll(act.Favorites))
	case AddFavorite:
		next := make([]players.Player, 0, len(s.Favorites)+1)
		next = append(next, s.Favorites...)
		s.Favorites = append(next, act.Player.Clone())
	case RemoveFavorite:
		next := make([]players.Player, 0, len(s.Favorites))
		for _, p := range s.Favorites {
			if p.ID != act.ID {
				next = append(next, p)
			}
		}
		s.Favorites = next
	case ClearFavorites:
		s.Favorites = []players.Player{}
	case SetSelectedTeam:
		s.SelectedTeam = copyTeam(act.Team)
	case SetSearchQuery:
		s.SearchQuery = act.Query
	case SetFilters:
		s.SearchQuery = act.Query
		s.SelectedTeam = copyTeam(act.Team)
	case SetLoading:
		s.Loading = act.Loading
	}
	return s
}

func copyTeam(team *string) *string {
	if team == nil {
		return nil
	}
	return TeamPtr(*team)
}

func nonNil(items []players.Player) []players.Player {
	if items == nil {
		return []players.Player{}
	}
	return items
}
