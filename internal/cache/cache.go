// Package cache remembers the result of content queries for a fixed
// wall-clock window so page renders inside the window skip the backend.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

type entry struct {
	value    any
	storedAt time.Time
}

// generation identifies the invalidation state a producer started under.
type generation struct {
	epoch uint64
	key   uint64
}

// Cache is a keyed store of timestamped values. Stores are last-writer-wins,
// except that a producer started before an invalidation never stores.
type Cache struct {
	clock   clockwork.Clock
	mu      sync.RWMutex
	entries map[string]entry
	gens    map[string]uint64
	known   map[string]struct{}
	epoch   uint64
	group   singleflight.Group
}

// New allocates an empty cache. A nil clock means the real clock.
func New(clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Cache{
		clock:   clock,
		entries: make(map[string]entry),
		gens:    make(map[string]uint64),
		known:   make(map[string]struct{}),
	}
}

// GetOrFetch returns the value stored under key if it was stored less than
// ttl ago. Otherwise it calls producer, stores whatever it returns and
// returns that. Callers that miss on the same key at the same time share one
// producer call.
//
// The producer runs detached from the caller's cancellation so a value
// computed for one request can be stored for the others.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, producer func(context.Context) T) T {
	if v, ok := load[T](c, key, ttl); ok {
		return v
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		if v, ok := load[T](c, key, ttl); ok {
			return v, nil
		}
		gen := c.begin(key)
		value := producer(context.WithoutCancel(ctx))
		c.storeIfCurrent(key, gen, value)
		return value, nil
	})

	typed, _ := v.(T)
	return typed
}

func load[T any](c *Cache, key string, ttl time.Duration) (T, bool) {
	var zero T

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}
	if c.clock.Since(e.storedAt) >= ttl {
		return zero, false
	}
	v, ok := e.value.(T)
	return v, ok
}

func (c *Cache) begin(key string) generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.known[key] = struct{}{}
	return generation{epoch: c.epoch, key: c.gens[key]}
}

func (c *Cache) storeIfCurrent(key string, gen generation, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen.epoch != c.epoch || gen.key != c.gens[key] {
		return false
	}
	c.entries[key] = entry{value: value, storedAt: c.clock.Now()}
	return true
}

// Invalidate drops the given keys so the next lookup refetches. A fetch
// already running for one of them still answers its own callers but is
// neither stored nor joined by later lookups.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.gens[key]++
		c.group.Forget(key)
	}
}

func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.epoch++
	for key := range c.known {
		c.group.Forget(key)
	}
}

// Len reports the number of stored entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
