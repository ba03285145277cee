// Package icon resolves best-effort raster icons for shortcut entries.
// Resolution is purely advisory: every failure path yields "no icon" and
// never an error the caller must handle, so listing and launching are never
// blocked on icons.
package icon

import (
	"log"
	"runtime"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"quicklaunch/internal/config"
)

// Resolver produces a base64-encoded PNG for a shortcut path, or "" when no
// icon could be extracted.
type Resolver interface {
	Resolve(path string) (string, error)
}

// NoopResolver serves platforms without an extraction mechanism.
type NoopResolver struct{}

func (NoopResolver) Resolve(string) (string, error) { return "", nil }

// NewResolver returns the platform resolver wrapped in an LRU cache.
func NewResolver(cfg *config.Config) (Resolver, error) {
	var inner Resolver = NoopResolver{}
	if runtime.GOOS == "windows" {
		inner = NewPowerShellResolver()
	}
	return NewCachedResolver(inner, cfg.Icons.CacheSize)
}

// CachedResolver memoizes resolution results per shortcut path. Negative
// results are cached too; a shortcut without an extractable icon will not
// spawn a subprocess on every repaint. Resolve is called concurrently, one
// goroutine per visible row, so the counters are atomics.
type CachedResolver struct {
	inner     Resolver
	cache     *lru.Cache[string, string]
	cacheHits int64
	cacheMiss int64
}

func NewCachedResolver(inner Resolver, size int) (*CachedResolver, error) {
	if size <= 0 {
		size = 200
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{inner: inner, cache: cache}, nil
}

func (c *CachedResolver) Resolve(path string) (string, error) {
	if icon, hit := c.cache.Get(path); hit {
		atomic.AddInt64(&c.cacheHits, 1)
		return icon, nil
	}
	misses := atomic.AddInt64(&c.cacheMiss, 1)

	icon, err := c.inner.Resolve(path)
	if err != nil {
		return "", err
	}
	c.cache.Add(path, icon)

	if misses%50 == 0 {
		log.Printf("[ICON-CACHE] hits=%d misses=%d size=%d",
			atomic.LoadInt64(&c.cacheHits), misses, c.cache.Len())
	}
	return icon, nil
}
