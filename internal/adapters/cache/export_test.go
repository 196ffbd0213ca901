package cache

import "time"

// SetClock replaces the clock used by IsFresh.
func (c *FileCache) SetClock(now func() time.Time) {
	c.now = now
}
