package players

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/state"
	"github.com/preston-bernstein/football-players-service/internal/testutil"
)

func names(items []players.Player) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.PlayerName)
	}
	return out
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	roster := testutil.AliceAndBob()
	for _, q := range []string{"red", "RED", "Red", "rEd"} {
		assert.Equal(t, []string{"Alice"}, names(Filter(roster, Criteria{Query: q})), q)
	}
}

func TestFilterTeamOnly(t *testing.T) {
	roster := testutil.AliceAndBob()
	got := Filter(roster, Criteria{Team: state.TeamPtr("Blue")})
	assert.Equal(t, []string{"Bob"}, names(got))
}

func TestFilterMatchesNameTeamOrPosition(t *testing.T) {
	roster := testutil.AliceAndBob()
	assert.Equal(t, []string{"Alice"}, names(Filter(roster, Criteria{Query: "ali"})))
	assert.Equal(t, []string{"Bob"}, names(Filter(roster, Criteria{Query: "mf"})))
	assert.Empty(t, Filter(roster, Criteria{Query: "zzz"}))
}

func TestFilterCombinesTeamAndQuery(t *testing.T) {
	roster := testutil.AliceAndBob()
	assert.Empty(t, Filter(roster, Criteria{Team: state.TeamPtr("Blue"), Query: "alice"}))
	assert.Equal(t, []string{"Alice", "Bob"}, names(Filter(roster, Criteria{})))
}

func TestFilterUnicodeFolding(t *testing.T) {
	roster := []players.Player{{PlayerName: "Tomás Silva"}, {PlayerName: "STRASSE"}}
	assert.Equal(t, []string{"Tomás Silva"}, names(Filter(roster, Criteria{Query: "TOMÁS"})))
	assert.Equal(t, []string{"STRASSE"}, names(Filter(roster, Criteria{Query: "straße"})))
}

func TestFilterFavoritesIgnoresTeam(t *testing.T) {
	roster := testutil.AliceAndBob()
	assert.Equal(t, []string{"Bob"}, names(FilterFavorites(roster, "bo")))
	assert.Len(t, FilterFavorites(roster, ""), 2)
}

func TestFilterEmptyInputReturnsEmptySlice(t *testing.T) {
	got := Filter(nil, Criteria{Query: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
