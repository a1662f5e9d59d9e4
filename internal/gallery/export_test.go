package gallery

import "time"

// SetCacheClock replaces the clock of c.
func SetCacheClock(c *Cache, now func() time.Time) {
	c.now = now
}
