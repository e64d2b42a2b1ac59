package teams

import "github.com/preston-bernstein/football-players-service/internal/domain/players"

// Team groups players under their club name.
type Team struct {
	Name    string           `json:"name"`
	Players []players.Player `json:"players"`
}

// GroupPlayers groups players by team name in first-seen order.
func GroupPlayers(items []players.Player) []Team {
	index := make(map[string]int)
	out := make([]Team, 0)
	for _, p := range items {
		i, ok := index[p.Team]
		if !ok {
			i = len(out)
			index[p.Team] = i
			out = append(out, Team{Name: p.Team})
		}
		out[i].Players = append(out[i].Players, p)
	}
	return out
}
