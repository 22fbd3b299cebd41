package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry[V any] struct {
	value   V
	touched time.Time
}

// Cache is a concurrent map whose entries optionally expire after a period without writes.
// A zero ttl keeps entries until they are deleted.
type Cache[K comparable, V any] struct {
	entries map[K]entry[V]
	mu      sync.RWMutex
	ttl     time.Duration
	clock   clockwork.Clock
}

type Option[K comparable, V any] func(*Cache[K, V])

// WithTTL expires entries that have not been set for longer than ttl
func WithTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.ttl = ttl
	}
}

// WithClock sets the clock used to age entries
func WithClock[K comparable, V any](clock clockwork.Clock) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.clock = clock
	}
}

func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{
		mu:      sync.RWMutex{},
		entries: make(map[K]entry[V]),
		clock:   clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, touched: c.clock.Now()}
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if c.expired(e) {
		c.mu.Lock()
		// only drop it if nobody refreshed it in between
		if current, ok := c.entries[key]; ok && c.expired(current) {
			delete(c.entries, key)
		}
		c.mu.Unlock()

		var zero V
		return zero, false
	}

	return e.value, true
}

func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]K, len(c.entries))
	i := 0
	for k := range c.entries {
		keys[i] = k
		i++
	}
	return keys
}

// Prune removes expired entries and returns how many were removed
func (c *Cache[K, V]) Prune() int {
	if c.ttl <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, k)
			removed++
		}
	}

	return removed
}

func (c *Cache[K, V]) expired(e entry[V]) bool {
	if c.ttl <= 0 {
		return false
	}

	return c.clock.Since(e.touched) > c.ttl
}
