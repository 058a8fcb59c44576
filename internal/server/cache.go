package server

import (
	"sync"
	"time"

	"github.com/dbmrq/spoons/internal/model"
	"github.com/dbmrq/spoons/internal/platform"
)

// cacheKey identifies a unique window-list scope.
type cacheKey struct {
	App      string
	PID      int
	ScreenID int
}

// cacheEntry holds a cached window list with its timestamp.
type cacheEntry struct {
	windows   []model.Window
	timestamp time.Time
}

// WindowCache is a TTL-based cache for window enumerations. Listing windows
// walks the accessibility tree of every application, which is slow enough
// to matter when an agent issues several queries in a row.
type WindowCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
}

// NewWindowCache creates a new cache. A ttl of 0 disables caching.
func NewWindowCache(ttl time.Duration) *WindowCache {
	return &WindowCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
	}
}

// ListWindows returns the cached list if within TTL, otherwise lists fresh.
// The caller must hold the provider mutex.
func (c *WindowCache) ListWindows(wm platform.WindowManager, opts platform.ListOptions) ([]model.Window, error) {
	if c.ttl == 0 {
		return wm.ListWindows(opts)
	}

	key := cacheKey{App: opts.App, PID: opts.PID, ScreenID: opts.ScreenID}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		windows := entry.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := wm.ListWindows(opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{windows: windows, timestamp: time.Now()}
	c.mu.Unlock()

	return windows, nil
}

// InvalidateAll clears the cache. Called after any frame mutation.
func (c *WindowCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}
