package store

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// KV short-lived string lists (flash messages per session). Both
// operations are atomic, so concurrent pushes to one key are never lost.
type KV interface {
	// Push appends value to the list at key and restarts its ttl.
	// A zero ttl means no expiry.
	Push(ctx context.Context, key string, value string, ttl time.Duration) error
	// Drain returns the list in push order and removes the key.
	// A missing key yields an empty list.
	Drain(ctx context.Context, key string) ([]string, error)
}

type RedisKV struct {
	c *redis.Client
}

func NewRedisKV(c *redis.Client) *RedisKV { return &RedisKV{c: c} }

func (r *RedisKV) Push(ctx context.Context, key string, value string, ttl time.Duration) error {
	pipe := r.c.TxPipeline()
	pipe.RPush(ctx, key, value)
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisKV) Drain(ctx context.Context, key string) ([]string, error) {
	pipe := r.c.TxPipeline()
	values := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return values.Val(), nil
}

// sweepInterval minimum time between MemoryKV expiry sweeps
const sweepInterval = time.Minute

type memoryList struct {
	values  []string
	expires time.Time
}

func (l memoryList) expired(now time.Time) bool {
	return !l.expires.IsZero() && !now.Before(l.expires)
}

// MemoryKV in-process KV used when Redis is disabled. Expired keys are
// swept on Push, at most once per sweepInterval.
type MemoryKV struct {
	mu        sync.Mutex
	items     map[string]memoryList
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]memoryList), now: time.Now}
}

func (m *MemoryKV) Push(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= sweepInterval {
		m.sweepLocked(now)
	}

	item := m.items[key]
	if item.expired(now) {
		item = memoryList{}
	}
	item.values = append(item.values, value)
	item.expires = time.Time{}
	if ttl > 0 {
		item.expires = now.Add(ttl)
	}
	m.items[key] = item
	return nil
}

func (m *MemoryKV) Drain(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	delete(m.items, key)
	if item.expired(m.now()) {
		return nil, nil
	}
	return item.values, nil
}

// Len number of keys held, expired ones included until the next sweep.
func (m *MemoryKV) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func (m *MemoryKV) sweepLocked(now time.Time) {
	for key, item := range m.items {
		if item.expired(now) {
			delete(m.items, key)
		}
	}
	m.lastSweep = now
}
