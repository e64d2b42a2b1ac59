// Package state holds the shared application state: the loaded player
// list, the cached favorites, and the active search/team filters.
//
// Transitions are expressed as Actions and applied by the pure Reduce
// function. A Store owns one State per application root; it is created by
// the server wiring and passed to the services and handlers that need it.
//
//	st := state.NewStore(state.State{})
//	unsubscribe := st.Subscribe(func(s state.State) { ... })
//	defer unsubscribe()
//	st.Dispatch(state.SetFilters{Query: "red", Team: state.TeamPtr("Arsenal")})
//
// Favorites actions only touch the in-memory cache. Persisting the change
// is the caller's job; app/favorites.Service pairs the two.
package state
