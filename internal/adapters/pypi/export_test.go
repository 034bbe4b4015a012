package pypi

import "time"

// CacheKey exposes cacheKey for testing.
var CacheKey = cacheKey

// NormalizeName exposes normalizeName for testing.
var NormalizeName = normalizeName

// WithClock replaces the clock used for cache expiry.
func (c *CachedIndex) WithClock(now func() time.Time) *CachedIndex {
	c.now = now
	return c
}
