// Package redis backs the best-effort report cache. The connection is
// pinged once at bootstrap; when the ping fails the service runs with
// caching disabled rather than refusing to start.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// pingTimeout bounds Ping so a dead Redis cannot stall startup or a
// readiness check.
const pingTimeout = 2 * time.Second

// Client owns the go-redis connection and exposes the narrow string
// get/set surface the report cache needs.
type Client struct {
	rdb *goredis.Client
}

func New(addr, password string, db int) *Client {
	return &Client{
		rdb: goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Ping checks the server within pingTimeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

// GetString fetches a key. False covers both a miss and an outage; the
// report cache treats them the same.
func (c *Client) GetString(ctx context.Context, key string) (string, bool) {
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

// SetString stores value under key for ttl.
func (c *Client) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
