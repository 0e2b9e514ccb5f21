package driver

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemEntries is the in-memory tier size used when none is given.
const DefaultMemEntries = 256

// TreeCache is a two-tier cache of built fixtures: a bounded in-memory LRU
// in front of an optional DiskCache. Safe for concurrent use.
type TreeCache struct {
	mem  *lru.Cache[Digest, *TreePayload]
	disk *DiskCache

	memHits  atomic.Int64
	diskHits atomic.Int64
	misses   atomic.Int64
}

// CacheCounters is a snapshot of TreeCache hit statistics.
type CacheCounters struct {
	MemHits  int64
	DiskHits int64
	Misses   int64
}

// NewTreeCache creates a cache with memEntries in-memory slots; disk may be nil.
func NewTreeCache(memEntries int, disk *DiskCache) (*TreeCache, error) {
	if memEntries <= 0 {
		memEntries = DefaultMemEntries
	}
	mem, err := lru.New[Digest, *TreePayload](memEntries)
	if err != nil {
		return nil, fmt.Errorf("tree cache: %w", err)
	}
	return &TreeCache{mem: mem, disk: disk}, nil
}

// Get looks the key up in memory first, then on disk. A disk hit is promoted
// into memory. Disk errors are returned with ok=false.
func (c *TreeCache) Get(key Digest) (*TreePayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	if p, ok := c.mem.Get(key); ok {
		c.memHits.Add(1)
		return p, true, nil
	}
	p, ok, err := c.disk.Get(key)
	if err != nil || !ok {
		c.misses.Add(1)
		return nil, false, err
	}
	c.diskHits.Add(1)
	c.mem.Add(key, p)
	return p, true, nil
}

// Put stores the payload in both tiers.
func (c *TreeCache) Put(key Digest, p *TreePayload) error {
	if c == nil || p == nil {
		return nil
	}
	c.mem.Add(key, p)
	return c.disk.Put(key, p)
}

// Purge drops the in-memory tier and every disk entry.
func (c *TreeCache) Purge() error {
	if c == nil {
		return nil
	}
	c.mem.Purge()
	return c.disk.DropAll()
}

func (c *TreeCache) Counters() CacheCounters {
	if c == nil {
		return CacheCounters{}
	}
	return CacheCounters{
		MemHits:  c.memHits.Load(),
		DiskHits: c.diskHits.Load(),
		Misses:   c.misses.Load(),
	}
}
