// Package redis wraps the go-redis client with the service's configuration
// and a JSON value cache used by external-collaborator lookups.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/siamhora/siamhora/internal/config"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// Client is a thin wrapper around *goredis.Client carrying the configured
// key prefix and default TTL.
type Client struct {
	rdb       *goredis.Client
	keyPrefix string
	ttl       time.Duration
	logger    logging.Logger
}

// NewClient connects to redis using cfg and verifies the connection with a
// ping.  The caller owns the returned client and must Close it.
func NewClient(ctx context.Context, cfg config.RedisConfig, logger logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s failed: %w", cfg.Addr, err)
	}

	logger.Info("redis connected", logging.String("addr", cfg.Addr), logging.Int("db", cfg.DB))

	return &Client{
		rdb:       rdb,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.DefaultTTL,
		logger:    logger,
	}, nil
}

// Raw exposes the underlying go-redis client for operations the wrapper does
// not cover.
func (c *Client) Raw() *goredis.Client {
	return c.rdb
}

// key applies the configured prefix.
func (c *Client) key(k string) string {
	return c.keyPrefix + k
}

// Healthy reports whether redis answers a ping within the context deadline.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.rdb.Ping(ctx).Err() == nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

//Personal.AI order the ending
