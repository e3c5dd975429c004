// Package cache stores JSON values in Redis. Set, Get and Delete report every
// failure and back the session store. Lookup and Remember back read-through
// caches and treat an unreachable Redis as a miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrNotFound is returned by Get for a missing or expired key.
	ErrNotFound = errors.New("key not found in cache")
	// ErrNotConfigured is returned by the strict methods of a nil Client.
	ErrNotConfigured = errors.New("cache is not configured")
)

// Client is a JSON view of one Redis database. A nil *Client is valid: it
// never hits and its strict methods return ErrNotConfigured.
type Client struct {
	rdb *redis.Client
}

// New connects lazily to the Redis server at addr.
func New(addr, password string, db int) *Client {
	return NewFromRedis(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
}

// NewFromRedis wraps an existing client.
func NewFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

func (c *Client) configured() bool {
	return c != nil && c.rdb != nil
}

// Set stores value as JSON under key for ttl.
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Get decodes the value under key into dst.
func (c *Client) Get(ctx context.Context, key string, dst interface{}) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key succeeds.
func (c *Client) Delete(ctx context.Context, key string) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Lookup is Get for read-through caches: it reports whether dst was filled
// and swallows every error.
func (c *Client) Lookup(ctx context.Context, key string, dst interface{}) bool {
	if !c.configured() {
		return false
	}
	return c.Get(ctx, key, dst) == nil
}

// Remember is Set for read-through caches, best effort.
func (c *Client) Remember(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !c.configured() {
		return
	}
	_ = c.Set(ctx, key, value, ttl)
}

// Ping reports whether Redis is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if !c.configured() {
		return ErrNotConfigured
	}
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if !c.configured() {
		return nil
	}
	return c.rdb.Close()
}
