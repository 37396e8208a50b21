package geocode

import (
	"context"
	"fmt"
	"time"

	"github.com/siamhora/siamhora/internal/infrastructure/database/redis"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// CacheMetrics counts cache outcomes for the geocoder.  Implemented by the
// prometheus collector; nil disables counting.
type CacheMetrics interface {
	GeocodeLookup(cacheHit bool)
}

// CachedClient decorates a geocoder with a redis cache.  Coordinates are
// rounded to two decimals for the cache key, which groups lookups within
// roughly a kilometre.
type CachedClient struct {
	inner   Geocoder
	cache   *redis.Cache
	ttl     time.Duration
	logger  logging.Logger
	metrics CacheMetrics
}

// Geocoder is the lookup the decorator wraps.
type Geocoder interface {
	CountryAt(ctx context.Context, lat, lon float64) (string, error)
}

type cachedCountry struct {
	Country string `json:"country"`
}

// NewCachedClient wraps inner with a cache.  metrics may be nil.
func NewCachedClient(inner Geocoder, cache *redis.Cache, ttl time.Duration,
	logger logging.Logger, metrics CacheMetrics) *CachedClient {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &CachedClient{inner: inner, cache: cache, ttl: ttl, logger: logger, metrics: metrics}
}

// cacheKey buckets a coordinate pair.
func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("geo:%.2f:%.2f", lat, lon)
}

// CountryAt returns the cached country for the coordinate bucket, consulting
// the wrapped geocoder on a miss.  With no cache configured it delegates
// directly.
func (c *CachedClient) CountryAt(ctx context.Context, lat, lon float64) (string, error) {
	if c.cache == nil {
		return c.inner.CountryAt(ctx, lat, lon)
	}

	key := cacheKey(lat, lon)
	hit := true

	var cached cachedCountry
	err := c.cache.GetOrSet(ctx, key, &cached, c.ttl, func(ctx context.Context) (interface{}, error) {
		hit = false
		country, err := c.inner.CountryAt(ctx, lat, lon)
		if err != nil {
			return nil, err
		}
		return cachedCountry{Country: country}, nil
	})
	if err != nil {
		if c.metrics != nil {
			c.metrics.GeocodeLookup(false)
		}
		return "", err
	}

	if c.metrics != nil {
		c.metrics.GeocodeLookup(hit)
	}
	return cached.Country, nil
}

//Personal.AI order the ending
