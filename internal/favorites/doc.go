// Package favorites persists the user's favorite players as one JSON array
// under a single key-value slot.
//
// The Store exposes two layers. Load, Add, Remove, Contains and Clear return
// errors so callers can tell "no favorites" from "could not read favorites".
// GetFavorites, AddToFavorites, RemoveFromFavorites, IsFavorite and
// ClearFavorites wrap them with a fail-soft contract: failures are logged and
// turned into an empty result or false, and no error crosses the boundary.
//
// A Store performs unguarded read-modify-write cycles. Concurrent mutations
// may lose updates unless they are serialized by the caller.
package favorites
