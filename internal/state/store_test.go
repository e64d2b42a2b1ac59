package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

func TestNewStoreNormalizesNilSlices(t *testing.T) {
	s := NewStore(State{})
	snap := s.Snapshot()
	assert.NotNil(t, snap.Players)
	assert.NotNil(t, snap.Favorites)
}

func TestDispatchNotifiesSubscribers(t *testing.T) {
	s := NewStore(State{})

	var got []State
	unsubscribe := s.Subscribe(func(st State) { got = append(got, st) })

	s.Dispatch(SetSearchQuery{Query: "red"})
	s.Dispatch(AddFavorite{Player: players.Player{ID: "a"}})
	require.Len(t, got, 2)
	assert.Equal(t, "red", got[0].SearchQuery)
	assert.Len(t, got[1].Favorites, 1)

	unsubscribe()
	unsubscribe()
	s.Dispatch(SetLoading{Loading: true})
	assert.Len(t, got, 2, "no notification after unsubscribe")
	assert.True(t, s.Snapshot().Loading)
}

func TestSubscribeNilIsNoop(t *testing.T) {
	s := NewStore(State{})
	s.Subscribe(nil)()
	s.Dispatch(SetLoading{Loading: true})
}

func TestListenerMayDispatch(t *testing.T) {
	s := NewStore(State{})
	s.Subscribe(func(st State) {
		if st.SearchQuery == "trigger" {
			s.Dispatch(SetLoading{Loading: true})
		}
	})

	s.Dispatch(SetSearchQuery{Query: "trigger"})
	assert.True(t, s.Snapshot().Loading)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := NewStore(State{Favorites: []players.Player{{ID: "a"}}})

	snap := s.Snapshot()
	snap.Favorites[0].ID = "changed"
	snap.Favorites = append(snap.Favorites, players.Player{ID: "b"})

	again := s.Snapshot()
	require.Len(t, again.Favorites, 1)
	assert.Equal(t, "a", again.Favorites[0].ID)
}

func TestConcurrentDispatch(t *testing.T) {
	s := NewStore(State{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(AddFavorite{Player: players.Player{ID: string(rune('a' + i%26))}})
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.Snapshot().Favorites, 50)
}
