// Package memcache is the default single-process session store: a
// TTL map holding JSON blobs, used when REDIS_ADDR is not configured.
package memcache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"reviewlens/internal/adapters/observability"
)

type entry struct {
	b       []byte
	expires time.Time
}

type Cache struct {
	mu   sync.RWMutex
	m    map[string]entry
	stop chan struct{}
}

// New starts a background janitor so abandoned sessions are reclaimed
// even when nothing reads their keys again. Call Close to stop it.
func New() *Cache {
	c := &Cache{m: make(map[string]entry), stop: make(chan struct{})}
	go c.janitor(sweepInterval)
	return c
}

const sweepInterval = time.Minute

func (c *Cache) janitor(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-t.C:
			c.sweep(time.Now())
		}
	}
}

func (c *Cache) sweep(now time.Time) {
	c.mu.Lock()
	for k, e := range c.m {
		if now.After(e.expires) {
			delete(c.m, k)
		}
	}
	c.mu.Unlock()
}

func (c *Cache) Close() { close(c.stop) }

func (c *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		if ok {
			c.mu.Lock()
			delete(c.m, key)
			c.mu.Unlock()
		}
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(e.b, dst)
}

func (c *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.m[key] = entry{b: b, expires: time.Now().Add(time.Duration(ttlSec) * time.Second)}
	c.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (c *Cache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}
