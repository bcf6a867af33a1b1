package query

import (
	"log/slog"
	"sync"

	"github.com/tobsdb/primdb/internal/builder"
	"github.com/tobsdb/primdb/pkg"
)

// Cache memoizes select results by cache key until the next mutation.
// Entries are never dropped one at a time: every mutation clears all of them.
type Cache struct {
	locker  sync.RWMutex
	entries pkg.Map[string, []builder.Row]
	// bumped by InvalidateAll; results computed across a bump are not stored
	generation uint64
}

func NewCache() *Cache {
	return &Cache{entries: pkg.Map[string, []builder.Row]{}}
}

func (c *Cache) GetLocker() *sync.RWMutex { return &c.locker }

// Get returns the cached rows for key, running compute and storing its result on a miss.
func (c *Cache) Get(key string, compute func() []builder.Row) []builder.Row {
	var rows []builder.Row
	var ok bool
	var generation uint64
	pkg.RLockWrap(c, func() {
		rows, ok = c.entries[key]
		generation = c.generation
	})
	if ok {
		slog.Debug("query cache hit", "key", key)
		return rows
	}

	slog.Debug("query cache miss", "key", key)
	rows = compute()
	pkg.LockWrap(c, func() {
		if c.generation != generation {
			slog.Debug("query cache invalidated during compute", "key", key)
			return
		}
		c.entries.Set(key, rows)
	})
	return rows
}

func (c *Cache) InvalidateAll() {
	pkg.LockWrap(c, func() {
		if len(c.entries) > 0 {
			slog.Debug("query cache invalidated", "entries", len(c.entries))
		}
		c.entries = pkg.Map[string, []builder.Row]{}
		c.generation++
	})
}

func (c *Cache) Len() int {
	var n int
	pkg.RLockWrap(c, func() { n = len(c.entries) })
	return n
}
