package player

import "context"

// Source loads the player table from its backing store.
type Source interface {
	// CacheKey identifies the loader and its arguments for process-wide memoization.
	CacheKey() string
	Load(ctx context.Context) (Table, error)
}
