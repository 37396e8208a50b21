package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	apperrors "github.com/siamhora/siamhora/pkg/errors"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("redis: cache miss")

// jitterFraction spreads expirations by up to ±10% of the TTL so that keys
// written together do not expire together.
const jitterFraction = 0.1

// Cache stores JSON-encoded values under prefixed keys with jittered TTLs.
// Concurrent GetOrSet calls for the same key are collapsed to a single
// loader execution.
type Cache struct {
	client *Client
	group  singleflight.Group
}

// NewCache builds a cache on top of an established client.
func NewCache(client *Client) *Cache {
	return &Cache{client: client}
}

// jitterTTL perturbs ttl by up to ±jitterFraction.
func jitterTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	spread := float64(ttl) * jitterFraction
	delta := (rand.Float64()*2 - 1) * spread
	return ttl + time.Duration(delta)
}

// Get unmarshals the value at key into dest.  A missing key returns
// ErrCacheMiss; transport and decode failures return an AppError.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.rdb.Get(ctx, c.client.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheError, "redis get failed")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSerialization, "cached value is not valid JSON")
	}
	return nil
}

// Set marshals value as JSON and stores it with a jittered TTL.  A zero ttl
// uses the client's configured default.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSerialization, "value is not JSON-encodable")
	}
	if ttl == 0 {
		ttl = c.client.ttl
	}
	if err := c.client.rdb.Set(ctx, c.client.key(key), raw, jitterTTL(ttl)).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheError, "redis set failed")
	}
	return nil
}

// Delete removes a key.  Deleting an absent key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.rdb.Del(ctx, c.client.key(key)).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeCacheError, "redis del failed")
	}
	return nil
}

// GetOrSet returns the cached value at key, or runs loader, stores its
// result, and returns it.  Concurrent callers for the same key share one
// loader execution.  A cache write failure is logged but does not fail the
// call; the loaded value is still returned.
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration,
	loader func(ctx context.Context) (interface{}, error)) error {

	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	} else if !errors.Is(err, ErrCacheMiss) {
		c.client.logger.Warn("cache read failed, falling through to loader",
			logging.String("key", key), logging.Err(err))
	}

	raw, err, _ := c.group.Do(key, func() (interface{}, error) {
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(ctx, key, value, ttl); err != nil {
			c.client.logger.Warn("cache write failed",
				logging.String("key", key), logging.Err(err))
		}
		return json.Marshal(value)
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(raw.([]byte), dest)
}

//Personal.AI order the ending
