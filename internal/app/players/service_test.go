package players

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/providers"
	"github.com/preston-bernstein/football-players-service/internal/state"
	"github.com/preston-bernstein/football-players-service/internal/testutil"
)

func newService(t *testing.T, stub *testutil.StubProvider) (*Service, *state.Store) {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	st := state.NewStore(state.State{})
	return NewService(stub, st, logger), st
}

func TestLoadPopulatesStateAndTogglesLoading(t *testing.T) {
	stub := &testutil.StubProvider{Players: testutil.AliceAndBob()}
	svc, st := newService(t, stub)

	var flags []bool
	st.Subscribe(func(s state.State) { flags = append(flags, s.Loading) })

	require.NoError(t, svc.Load(context.Background()))
	assert.Len(t, svc.Roster(), 2)
	assert.Equal(t, []bool{true, true, false}, flags)
	assert.False(t, st.Snapshot().Loading)
}

func TestLoadFailureKeepsPreviousPlayers(t *testing.T) {
	stub := &testutil.StubProvider{Players: testutil.AliceAndBob()}
	svc, st := newService(t, stub)
	require.NoError(t, svc.Load(context.Background()))

	stub.Err = errors.New("upstream down")
	err := svc.Load(context.Background())
	assert.Error(t, err)
	assert.Len(t, st.Snapshot().Players, 2)
	assert.False(t, st.Snapshot().Loading, "loading flag is cleared on failure")
}

type gatedProvider struct {
	players []players.Player
	entered chan struct{}
	release chan struct{}
}

func newGatedProvider(items []players.Player) *gatedProvider {
	return &gatedProvider{players: items, entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	g.entered <- struct{}{}
	select {
	case <-g.release:
		return players.CloneAll(g.players), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedProvider) FetchPlayer(ctx context.Context, id string) (players.Player, error) {
	return players.Player{}, providers.ErrPlayerNotFound
}

func TestOverlappingLoadsKeepLoadingUntilLastFinishes(t *testing.T) {
	gated := newGatedProvider(testutil.AliceAndBob())
	logger, _ := testutil.NewBufferLogger()
	st := state.NewStore(state.State{})
	svc := NewService(gated, st, logger)

	var mu sync.Mutex
	var flags []bool
	st.Subscribe(func(s state.State) {
		mu.Lock()
		defer mu.Unlock()
		if len(flags) == 0 || flags[len(flags)-1] != s.Loading {
			flags = append(flags, s.Loading)
		}
	})

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { done <- svc.Load(context.Background()) }()
		<-gated.entered
	}

	gated.release <- struct{}{}
	require.NoError(t, <-done)
	assert.True(t, st.Snapshot().Loading, "second load still in flight")

	gated.release <- struct{}{}
	require.NoError(t, <-done)
	assert.False(t, st.Snapshot().Loading)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false}, flags)
}

func TestTeamsFirstSeenOrder(t *testing.T) {
	stub := &testutil.StubProvider{Players: []players.Player{
		{ID: "1", Team: "Red"}, {ID: "2", Team: "Blue"}, {ID: "3", Team: "Red"}, {ID: "4", Team: "Green"},
	}}
	svc, _ := newService(t, stub)
	assert.Empty(t, svc.Teams())

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, []string{"Red", "Blue", "Green"}, svc.Teams())
	assert.Len(t, svc.PlayersByTeam("Red"), 2)
	assert.Empty(t, svc.PlayersByTeam("Purple"))
}

func TestSearchRecordsFiltersInState(t *testing.T) {
	stub := &testutil.StubProvider{Players: testutil.AliceAndBob()}
	svc, st := newService(t, stub)
	require.NoError(t, svc.Load(context.Background()))

	got := svc.Search("RED", nil)
	assert.Equal(t, []string{"Alice"}, names(got))
	assert.Equal(t, "RED", st.Snapshot().SearchQuery)

	got = svc.Search("", state.TeamPtr("Blue"))
	assert.Equal(t, []string{"Bob"}, names(got))
	team, ok := st.Snapshot().Team()
	assert.True(t, ok)
	assert.Equal(t, "Blue", team)
	assert.Equal(t, []string{"Bob"}, names(svc.Visible()))
}

func TestSearchUpdatesFiltersInOneTransition(t *testing.T) {
	stub := &testutil.StubProvider{Players: testutil.AliceAndBob()}
	svc, st := newService(t, stub)
	require.NoError(t, svc.Load(context.Background()))
	svc.Search("old", state.TeamPtr("Red"))

	var seen []state.State
	st.Subscribe(func(s state.State) { seen = append(seen, s) })

	got := svc.Search("bo", state.TeamPtr("Blue"))

	require.Len(t, seen, 1)
	assert.Equal(t, "bo", seen[0].SearchQuery)
	team, ok := seen[0].Team()
	require.True(t, ok)
	assert.Equal(t, "Blue", team)
	assert.Equal(t, []string{"Bob"}, names(got))
}

func TestDetailUsesProvider(t *testing.T) {
	p := testutil.SamplePlayer("p1")
	stub := &testutil.StubProvider{
		Players: []players.Player{p},
		ByIDErr: fmt.Errorf("stub: %w", providers.ErrPlayerNotFound),
	}
	svc, _ := newService(t, stub)
	svc.now = testutil.NowAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	d, err := svc.Detail(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", d.Player.ID)
	assert.Equal(t, 30, d.Age)
	assert.Equal(t, "4.0", d.AverageRating)

	_, err = svc.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, providers.ErrPlayerNotFound)
}
