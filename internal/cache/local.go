package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type localCache struct {
	c *gocache.Cache
}

// NewLocal returns an in-process cache. Entries set with a zero ttl use defaultTTL.
func NewLocal(defaultTTL time.Duration) Cache {
	if defaultTTL <= 0 {
		defaultTTL = 5 * time.Minute
	}
	return &localCache{c: gocache.New(defaultTTL, 2*defaultTTL)}
}

func (l *localCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, found := l.c.Get(key)
	if !found {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	// copy so callers cannot mutate the cached slice
	out := make([]byte, len(b))
	copy(out, b)
	return out, true, nil
}

func (l *localCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	l.c.Set(key, stored, ttl)
	return nil
}

func (l *localCache) Delete(_ context.Context, key string) error {
	l.c.Delete(key)
	return nil
}

func (l *localCache) Close() error {
	l.c.Flush()
	return nil
}
