package state

import (
	"sync"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
)

// Listener receives the state produced by a dispatch.
type Listener func(State)

// Store serializes transitions over one State and broadcasts the result.
// Listeners run on the dispatching goroutine after the lock is released,
// so they may call Snapshot or Dispatch.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[uint64]Listener
	nextID    uint64
}

// NewStore constructs a store seeded with a copy of initial.
func NewStore(initial State) *Store {
	s := initial.Clone()
	if s.Players == nil {
		s.Players = []players.Player{}
	}
	if s.Favorites == nil {
		s.Favorites = []players.Player{}
	}
	return &Store{
		state:     s,
		listeners: make(map[uint64]Listener),
	}
}

// Dispatch applies a and notifies every subscriber with the new state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next.Clone())
	}
	return next
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers l and returns a function that removes it.
// The returned function is safe to call more than once.
func (s *Store) Subscribe(l Listener) func() {
	if l == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}
