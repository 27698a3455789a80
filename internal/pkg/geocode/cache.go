package geocode

import (
	"fmt"
	"sync"
	"time"
)

// placeCache is a small TTL cache for resolved places, keyed by coordinates
// rounded to ~1m precision. It exists to bound external geocoding calls under
// check-in bursts; it is not authoritative, a miss simply re-resolves.
type placeCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	place     Place
	expiresAt time.Time
}

func newPlaceCache(ttl time.Duration) *placeCache {
	return &placeCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// cacheKey rounds to 5 decimal places (~1.1m at the equator) so that jittery
// fixes from the same spot share an entry.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.5f,%.5f", lat, lon)
}

func (c *placeCache) get(key string) (Place, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		return Place{}, false
	}
	return entry.place, true
}

func (c *placeCache) set(key string, place Place) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		place:     place,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Evict removes expired entries. Called periodically by the maintenance job;
// lookups also ignore expired entries, so eviction is purely about memory.
func (c *placeCache) Evict() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *placeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
