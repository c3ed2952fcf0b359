package cache

import (
	"context"

	"github.com/riskibarqy/fc-player-dashboard/internal/domain/player"
	basecache "github.com/riskibarqy/fc-player-dashboard/internal/platform/cache"
)

const playerTableKeyPrefix = "player:table:"

// PlayerTableSource memoizes the table of the wrapped source so the
// underlying file or query runs once per process. A failed load is not
// remembered and the next call retries.
type PlayerTableSource struct {
	next  player.Source
	cache *basecache.Store[player.Table]
}

func NewPlayerTableSource(next player.Source, cache *basecache.Store[player.Table]) *PlayerTableSource {
	return &PlayerTableSource{next: next, cache: cache}
}

func (s *PlayerTableSource) CacheKey() string {
	return s.next.CacheKey()
}

func (s *PlayerTableSource) Load(ctx context.Context) (player.Table, error) {
	return s.cache.GetOrLoad(ctx, s.key(), s.next.Load)
}

func (s *PlayerTableSource) key() string {
	return playerTableKeyPrefix + s.next.CacheKey()
}
