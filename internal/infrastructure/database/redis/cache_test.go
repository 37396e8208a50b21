package redis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamhora/siamhora/internal/config"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	cfg := config.RedisConfig{
		Addr:         mr.Addr(),
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		DefaultTTL:   time.Minute,
		KeyPrefix:    "siamhora:",
	}
	client, err := NewClient(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client), mr
}

type cachedCountry struct {
	Country string `json:"country"`
}

func TestCache_SetAndGet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "geo:13.75:100.50", cachedCountry{Country: "thailand"}, time.Minute))

	var got cachedCountry
	require.NoError(t, cache.Get(ctx, "geo:13.75:100.50", &got))
	assert.Equal(t, "thailand", got.Country)

	// Keys are stored under the configured prefix.
	assert.True(t, mr.Exists("siamhora:geo:13.75:100.50"))
}

func TestCache_GetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var got cachedCountry
	err := cache.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", cachedCountry{Country: "x"}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))

	var got cachedCountry
	assert.ErrorIs(t, cache.Get(ctx, "k", &got), ErrCacheMiss)

	// Idempotent.
	assert.NoError(t, cache.Delete(ctx, "k"))
}

func TestCache_GetOrSet_LoadsOnceThenCaches(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	var calls int32
	loader := func(context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return cachedCountry{Country: "india"}, nil
	}

	var got cachedCountry
	require.NoError(t, cache.GetOrSet(ctx, "geo:k", &got, time.Minute, loader))
	assert.Equal(t, "india", got.Country)

	var again cachedCountry
	require.NoError(t, cache.GetOrSet(ctx, "geo:k", &again, time.Minute, loader))
	assert.Equal(t, "india", again.Country)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_GetOrSet_LoaderErrorPropagates(t *testing.T) {
	cache, _ := newTestCache(t)

	var got cachedCountry
	err := cache.GetOrSet(context.Background(), "geo:bad", &got, time.Minute,
		func(context.Context) (interface{}, error) {
			return nil, errors.New("upstream down")
		})
	assert.ErrorContains(t, err, "upstream down")
}

func TestCache_GetOrSet_ConcurrentCallsShareLoader(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	var calls int32
	loader := func(context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return cachedCountry{Country: "nepal"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var got cachedCountry
			assert.NoError(t, cache.GetOrSet(ctx, "geo:shared", &got, time.Minute, loader))
			assert.Equal(t, "nepal", got.Country)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_SetZeroTTLUsesDefault(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", cachedCountry{Country: "x"}, 0))

	ttl := mr.TTL("siamhora:k")
	// Default is one minute; jitter keeps it within ±10%.
	assert.Greater(t, ttl, 50*time.Second)
	assert.Less(t, ttl, 70*time.Second)
}

func TestJitterTTL_StaysWithinSpread(t *testing.T) {
	base := time.Minute
	for i := 0; i < 100; i++ {
		j := jitterTTL(base)
		assert.GreaterOrEqual(t, j, 54*time.Second)
		assert.LessOrEqual(t, j, 66*time.Second)
	}
	assert.Equal(t, time.Duration(0), jitterTTL(0))
}

//Personal.AI order the ending
