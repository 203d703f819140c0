// Package session keeps per-visitor state for the board server.
package session

import "context"

// Store maps visitor IDs to state.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	// Update replaces the value for id with fn(current, found) atomically
	// and returns the stored result.
	Update(ctx context.Context, id string, fn func(cur T, found bool) T) (T, error)
	NewID() string
}
