package star

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// cachedLeaderboard wraps a leaderboard page with version metadata so the
// structure can evolve without serving stale shapes.
type cachedLeaderboard struct {
	Version  string
	Entries  []domain.LeaderboardEntry
	CachedAt time.Time
}

// leaderboardCache is a short-TTL LRU over leaderboard pages, keyed by
// requested limit. Awards invalidate it so fresh totals surface quickly.
type leaderboardCache struct {
	lru *expirable.LRU[string, *cachedLeaderboard]
}

func newLeaderboardCache(size int, ttl time.Duration) *leaderboardCache {
	return &leaderboardCache{
		lru: expirable.NewLRU[string, *cachedLeaderboard](size, nil, ttl),
	}
}

func (c *leaderboardCache) Get(limit int) ([]domain.LeaderboardEntry, bool) {
	entry, found := c.lru.Get(strconv.Itoa(limit))
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(strconv.Itoa(limit))
		return nil, false
	}
	return entry.Entries, true
}

func (c *leaderboardCache) Set(limit int, entries []domain.LeaderboardEntry) {
	c.lru.Add(strconv.Itoa(limit), &cachedLeaderboard{
		Version:  CacheSchemaVersion,
		Entries:  entries,
		CachedAt: time.Now(),
	})
}

func (c *leaderboardCache) Clear() {
	c.lru.Purge()
}
