package cache

import (
	"hash/fnv"
	"sync"
	"time"
)

const defaultShards = 16

type shard struct {
	mu   sync.RWMutex
	data map[string]entry
}

// ShardedCache spreads keys over a power-of-two number of shards so that
// concurrent readers of different restaurants do not contend on one lock.
type ShardedCache struct {
	shards []shard
	ttl    time.Duration
	now    func() time.Time

	stop   chan struct{}
	closed sync.Once
}

type ShardedOption func(*ShardedCache)

// WithShards rounds n up to the next power of two. Non-positive values fall
// back to the default.
func WithShards(n int) ShardedOption {
	return func(c *ShardedCache) {
		if n <= 0 {
			n = defaultShards
		}
		size := 1
		for size < n {
			size <<= 1
		}
		c.shards = make([]shard, size)
		for i := range c.shards {
			c.shards[i].data = make(map[string]entry)
		}
	}
}

func WithShardTTL(ttl time.Duration) ShardedOption { return func(c *ShardedCache) { c.ttl = ttl } }

func NewShardedCache(opts ...ShardedOption) *ShardedCache {
	c := &ShardedCache{now: time.Now, stop: make(chan struct{})}
	WithShards(defaultShards)(c)
	for _, o := range opts {
		o(c)
	}
	if c.ttl > 0 {
		go janitor(c.ttl/2, c.stop, c.purge)
	}
	return c
}

func (c *ShardedCache) Close() {
	c.closed.Do(func() { close(c.stop) })
}

func (c *ShardedCache) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &c.shards[int(h.Sum32())&(len(c.shards)-1)]
}

func (c *ShardedCache) Put(key string, v any) {
	e := entry{v: v}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	s := c.shardFor(key)
	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
}

func (c *ShardedCache) Get(key string) (any, bool) {
	s := c.shardFor(key)
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(c.now()) {
		// another writer may have refreshed the key in between
		s.mu.Lock()
		if cur, ok := s.data[key]; ok && cur.expires.Equal(e.expires) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.v, true
}

func (c *ShardedCache) Delete(key string) {
	s := c.shardFor(key)
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (c *ShardedCache) Snapshot() map[string]any {
	out := make(map[string]any)
	now := c.now()
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		for k, e := range s.data {
			if !e.expired(now) {
				out[k] = e.v
			}
		}
		s.mu.RUnlock()
	}
	return out
}

func (c *ShardedCache) purge() {
	now := c.now()
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		for k, e := range s.data {
			if e.expired(now) {
				delete(s.data, k)
			}
		}
		s.mu.Unlock()
	}
}
