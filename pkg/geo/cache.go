package geo

import (
	"context"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/warehouse-exchange/wex/pkg/config"
)

// negativeEntry records a failed lookup so repeated bad input does not burn
// provider quota. "not found" and "not commercial" carry different TTLs.
type negativeEntry struct {
	err       error
	expiresAt time.Time
}

// CachingGeocoder wraps a provider Geocoder with an LRU cache, per-process
// negative caching, and a global sliding-window rate limit. Caches are
// per-process; at worst a second replica performs one redundant lookup.
type CachingGeocoder struct {
	provider Geocoder
	cfg      *config.GeoConfig

	cache *lru.Cache[string, *Location]

	mu        sync.Mutex
	negatives map[string]negativeEntry
	callTimes []time.Time

	now func() time.Time
}

// NewCachingGeocoder wraps provider with the caching and rate-limit policy
// from cfg.
func NewCachingGeocoder(provider Geocoder, cfg *config.GeoConfig) (*CachingGeocoder, error) {
	cache, err := lru.New[string, *Location](cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &CachingGeocoder{
		provider:  provider,
		cfg:       cfg,
		cache:     cache,
		negatives: make(map[string]negativeEntry),
		now:       time.Now,
	}, nil
}

// Geocode resolves city/state through the cache. Order of checks: positive
// cache, negative cache, rate limit, provider.
func (g *CachingGeocoder) Geocode(ctx context.Context, city, state string) (*Location, error) {
	key := NormalizeKey(city, state)

	if loc, ok := g.cache.Get(key); ok {
		return loc, nil
	}

	if err := g.checkNegative(key); err != nil {
		return nil, err
	}

	if !g.allow() {
		return nil, ErrRateLimited
	}

	loc, err := g.provider.Geocode(ctx, city, state)
	if err != nil {
		g.recordNegative(key, err)
		return nil, err
	}

	g.cache.Add(key, loc)
	return loc, nil
}

// checkNegative returns the cached failure for key if it has not expired.
func (g *CachingGeocoder) checkNegative(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.negatives[key]
	if !ok {
		return nil
	}
	if g.now().After(entry.expiresAt) {
		delete(g.negatives, key)
		return nil
	}
	return entry.err
}

// recordNegative stores a failed lookup with the TTL matching its cause.
// Transient provider errors are not cached.
func (g *CachingGeocoder) recordNegative(key string, err error) {
	var ttl time.Duration
	switch err {
	case ErrNotFound:
		ttl = g.cfg.NotFoundTTL
	case ErrNotCommercial:
		ttl = g.cfg.NotCommercialTTL
	default:
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.negatives[key] = negativeEntry{err: err, expiresAt: g.now().Add(ttl)}
}

// allow applies the global sliding-window rate limit.
func (g *CachingGeocoder) allow() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := g.now().Add(-time.Minute)
	kept := g.callTimes[:0]
	for _, t := range g.callTimes {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	g.callTimes = kept

	if len(g.callTimes) >= g.cfg.SearchRateLimitPerMinute {
		slog.Warn("Geocoding rate limit reached", "limit_per_minute", g.cfg.SearchRateLimitPerMinute)
		return false
	}
	g.callTimes = append(g.callTimes, g.now())
	return true
}
