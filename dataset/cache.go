package dataset

import (
	"context"
	"sync"

	"github.com/andareed/siftly-bikes/logging"
	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	version string
	ds      *Dataset
}

// Cache memoizes loaded datasets by source key. An entry is reused only
// while the source reports the same version, so an edited file is reloaded.
// Concurrent loads of one source version share a single read.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the dataset for src. The returned Dataset is shared between
// callers and must be treated as read-only.
func (c *Cache) Get(ctx context.Context, src Source) (*Dataset, error) {
	key := src.Key()
	version, err := src.Version(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if ok && e.version == version {
		logging.Debugf("cache: hit %s@%s", key, version)
		return e.ds, nil
	}

	// Waiters share one load, so it does not inherit this caller's
	// cancellation. A cancelled caller only stops waiting.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key+"@"+version, func() (any, error) {
		logging.Infof("cache: loading %s@%s", key, version)
		ds, err := src.Load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{version: version, ds: ds}
		c.mu.Unlock()
		return ds, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		logging.Debugf("cache: shared load of %s", key)
	}
	return res.Val.(*Dataset), nil
}

func (c *Cache) Invalidate(src Source) {
	c.mu.Lock()
	delete(c.entries, src.Key())
	c.mu.Unlock()
	logging.Infof("cache: invalidated %s", src.Key())
}

func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
