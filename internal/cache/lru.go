// internal/cache/lru.go
//
// Small LRU cache with per-entry TTL, used by the page-lookup layer to
// hold immutable database snapshots.  Entries are value snapshots; callers
// must never mutate what they get back—invalidation happens by expiry or
// eviction, not in-place update.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// LRU is a concurrency-safe least-recently-used cache.  Keys are strings;
// values can be any immutable snapshot.
type LRU struct {
	mu   sync.Mutex
	cap  int
	ttl  time.Duration
	ll   *list.List
	dict map[string]*list.Element
}

type entry struct {
	key string
	val any
	exp time.Time
}

// New returns an LRU with the given capacity and entry TTL.  Panics on
// cap < 1.  A zero TTL means entries never expire.
func New(capacity int, ttl time.Duration) *LRU {
	if capacity < 1 {
		panic("cache: capacity must be ≥1")
	}
	return &LRU{
		cap:  capacity,
		ttl:  ttl,
		ll:   list.New(),
		dict: make(map[string]*list.Element, capacity),
	}
}

// Get retrieves a live value and marks it MRU.  Expired entries are
// removed on access and reported as misses.
func (c *LRU) Get(key string) (val any, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, hit := c.dict[key]
	if !hit {
		return nil, false
	}
	ent := ele.Value.(entry)
	if !ent.exp.IsZero() && time.Now().After(ent.exp) {
		c.ll.Remove(ele)
		delete(c.dict, key)
		return nil, false
	}
	c.ll.MoveToFront(ele)
	return ent.val, true
}

// Add inserts or replaces a snapshot.  Replacement stores a fresh entry;
// existing readers keep whatever snapshot they already hold.
func (c *LRU) Add(key string, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var exp time.Time
	if c.ttl > 0 {
		exp = time.Now().Add(c.ttl)
	}
	if ele, hit := c.dict[key]; hit {
		ele.Value = entry{key, val, exp}
		c.ll.MoveToFront(ele)
		return
	}
	ele := c.ll.PushFront(entry{key, val, exp})
	c.dict[key] = ele
	if c.ll.Len() > c.cap {
		last := c.ll.Back()
		c.ll.Remove(last)
		delete(c.dict, last.Value.(entry).key)
	}
}

// Len reports current size, expired entries included until touched.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
