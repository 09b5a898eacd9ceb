package server

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/mj1618/axsearch/internal/model"
	"github.com/mj1618/axsearch/internal/platform"
)

// cacheKey identifies one linked view of a tree file.
type cacheKey struct {
	Path              string
	Viewport          platform.Bounds
	HasViewport       bool
	IgnoreEmptyGroups bool
	Raw               bool
}

// cacheEntry holds a linked tree with its timestamp.
type cacheEntry struct {
	tree      *model.Tree
	timestamp time.Time
}

// TreeCache provides a TTL-based cache of linked trees. Trees are immutable
// once built, so a cached tree may be searched by several calls at once.
type TreeCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewTreeCache creates a new cache. A ttl of 0 disables caching.
func NewTreeCache(ttl time.Duration) *TreeCache {
	return &TreeCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func keyFor(opts platform.ReadOptions) cacheKey {
	path, err := filepath.Abs(opts.Path)
	if err != nil {
		path = filepath.Clean(opts.Path)
	}
	key := cacheKey{
		Path:              path,
		IgnoreEmptyGroups: opts.IgnoreEmptyGroups,
		Raw:               opts.Raw,
	}
	if opts.Viewport != nil {
		key.Viewport = *opts.Viewport
		key.HasViewport = true
	}
	return key
}

// ReadTree returns a cached tree if within TTL, otherwise reads fresh.
// The caller must hold the provider mutex.
func (c *TreeCache) ReadTree(reader platform.Reader, opts platform.ReadOptions) (*model.Tree, error) {
	if c.ttl == 0 {
		return reader.ReadTree(opts)
	}

	key := keyFor(opts)

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && c.now().Sub(entry.timestamp) < c.ttl {
		tree := entry.tree
		c.mu.Unlock()
		return tree, nil
	}
	c.mu.Unlock()

	tree, err := reader.ReadTree(opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{tree: tree, timestamp: c.now()}
	c.mu.Unlock()

	return tree, nil
}

// Invalidate removes every entry read from path.
func (c *TreeCache) Invalidate(path string) {
	abs := keyFor(platform.ReadOptions{Path: path}).Path
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Path == abs {
			delete(c.entries, k)
		}
	}
}

// InvalidateAll clears the entire cache.
func (c *TreeCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

// Len returns the number of cached trees, expired or not.
func (c *TreeCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
