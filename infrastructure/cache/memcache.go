package cache

import (
	"context"
	"sync"
	"time"
)

// MemCache is an in-process Cache backed by sync.Map. A background cleanup
// goroutine runs when NewMemCache is given a positive cleanupInterval.
type MemCache struct {
	items sync.Map
	stop  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

type item struct {
	value      string
	expiration int64 // unix nano; 0 means no expiration
}

var _ Cache = (*MemCache)(nil)

func NewMemCache(cleanupInterval time.Duration) *MemCache {
	m := &MemCache{
		stop: make(chan struct{}),
	}
	if cleanupInterval > 0 {
		m.wg.Add(1)
		go func() {
			ticker := time.NewTicker(cleanupInterval)
			defer ticker.Stop()
			defer m.wg.Done()
			for {
				select {
				case <-ticker.C:
					m.cleanup()
				case <-m.stop:
					return
				}
			}
		}()
	}
	return m
}

func (m *MemCache) Get(_ context.Context, key string) (string, error) {
	v, ok := m.items.Load(key)
	if !ok {
		return "", ErrMiss
	}
	it := v.(*item)
	if it.isExpired(time.Now().UnixNano()) {
		m.items.Delete(key)
		return "", ErrMiss
	}
	return it.value, nil
}

func (m *MemCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).UnixNano()
	}
	m.items.Store(key, &item{
		value:      value,
		expiration: exp,
	})
	return nil
}

func (m *MemCache) Ping(context.Context) error {
	return nil
}

func (m *MemCache) Close() error {
	m.once.Do(func() {
		close(m.stop)
	})
	m.wg.Wait()
	return nil
}

func (it *item) isExpired(now int64) bool {
	return it.expiration != 0 && now > it.expiration
}

func (m *MemCache) cleanup() {
	now := time.Now().UnixNano()
	m.items.Range(func(k, v any) bool {
		if v.(*item).isExpired(now) {
			m.items.Delete(k)
		}
		return true
	})
}
