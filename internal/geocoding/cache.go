package geocoding

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cachePrefix = "geocode:"

// DefaultCacheTTL bounds how long a geocoded address is reused before the
// provider is asked again.
const DefaultCacheTTL = time.Hour

// Cache is a redis-backed store of successful geocode results keyed by
// normalized address. A nil *Cache is a no-op, so the client works without
// redis configured. Cache failures are never fatal; the provider is simply
// called again.
type Cache struct {
	Rdb *redis.Client
	TTL time.Duration
}

func cacheKey(address string) string {
	return cachePrefix + strings.ToLower(strings.Join(strings.Fields(address), " "))
}

func (c *Cache) Get(ctx context.Context, address string) (*Result, bool) {
	if c == nil || c.Rdb == nil {
		return nil, false
	}
	raw, err := c.Rdb.Get(ctx, cacheKey(address)).Bytes()
	if err != nil {
		return nil, false
	}
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, false
	}
	return &r, true
}

func (c *Cache) Put(ctx context.Context, address string, r *Result) {
	if c == nil || c.Rdb == nil {
		return
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := c.Rdb.Set(ctx, cacheKey(address), raw, ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("geocode cache write failed")
	}
}
