package players

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// Criteria selects players by team and free-text query.
type Criteria struct {
	Team  *string
	Query string
}

// Filter keeps players on the selected team (when set) whose name, team or
// position contains the query, compared case-insensitively. Order is preserved.
func Filter(items []players.Player, c Criteria) []players.Player {
	m := newMatcher(c.Query)
	out := make([]players.Player, 0, len(items))
	for _, p := range items {
		if c.Team != nil && p.Team != *c.Team {
			continue
		}
		if !m.match(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterFavorites applies only the text query.
func FilterFavorites(items []players.Player, query string) []players.Player {
	return Filter(items, Criteria{Query: query})
}

type matcher struct {
	fold  cases.Caser
	query string
}

func newMatcher(query string) *matcher {
	fold := cases.Fold()
	return &matcher{fold: fold, query: fold.String(query)}
}

func (m *matcher) match(p players.Player) bool {
	if m.query == "" {
		return true
	}
	for _, field := range []string{p.PlayerName, p.Team, p.Position} {
		if strings.Contains(m.fold.String(field), m.query) {
			return true
		}
	}
	return false
}
