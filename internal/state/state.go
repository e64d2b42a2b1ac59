package state

import "github.com/preston-bernstein/football-players-service/internal/domain/players"

// State is the process-wide view shared by handlers.
type State struct {
	Players      []players.Player `json:"players"`
	Favorites    []players.Player `json:"favorites"`
	SelectedTeam *string          `json:"selectedTeam"`
	SearchQuery  string           `json:"searchQuery"`
	Loading      bool             `json:"loading"`
}

// Clone returns a copy that shares no slices or pointers with s.
func (s State) Clone() State {
	out := s
	out.Players = players.CloneAll(s.Players)
	out.Favorites = players.CloneAll(s.Favorites)
	if s.SelectedTeam != nil {
		team := *s.SelectedTeam
		out.SelectedTeam = &team
	}
	return out
}

// Team returns the selected team filter and whether one is set.
func (s State) Team() (string, bool) {
	if s.SelectedTeam == nil {
		return "", false
	}
	return *s.SelectedTeam, true
}
