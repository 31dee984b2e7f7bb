package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin JSON cache over Redis for read-heavy endpoints. Every
// method is safe on a nil receiver and fails open: cache trouble only costs
// a database round trip, never a request.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis at addr. Returns nil (caching disabled) when addr is
// empty or the server is unreachable.
func New(addr string) *Client {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s, caching disabled: %v", addr, err)
		return nil
	}
	return &Client{rdb: rdb}
}

// GetJSON loads key into v. Returns false on a miss or any cache error.
func (c *Client) GetJSON(ctx context.Context, key string, v interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Cache unmarshal error for %s: %v", key, err)
		return false
	}
	return true
}

// SetJSON stores v under key with the given TTL. Errors are logged and ignored.
func (c *Client) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Cache marshal error for %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("Cache set error for %s: %v", key, err)
	}
}

// Invalidate removes a key; a failed delete just means a stale TTL window.
func (c *Client) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		log.Printf("Cache delete error for %s: %v", key, err)
	}
}
