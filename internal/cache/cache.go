package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
)

// Cache stores opaque byte payloads. Callers own serialization so that the
// local and Redis backends behave identically.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// New builds the backend selected by CACHE_TYPE.
func New(cfg *config.Config) (Cache, error) {
	switch strings.ToLower(cfg.CacheType) {
	case "", "local", "gocache":
		return NewLocal(cfg.ZoneCacheTTL), nil
	case "redis":
		return NewRedisFromURL(cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.CacheType)
	}
}
