package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type entry struct {
	ID uint `json:"id"`
}

func unreachable(t *testing.T) *Client {
	t.Helper()
	c := NewFromRedis(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	}))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNilClient(t *testing.T) {
	var c *Client
	ctx := context.Background()
	var got entry

	assert.False(t, c.Lookup(ctx, "job:1", &got))
	c.Remember(ctx, "job:1", entry{ID: 1}, time.Minute)

	assert.ErrorIs(t, c.Set(ctx, "session:a", entry{ID: 1}, time.Minute), ErrNotConfigured)
	assert.ErrorIs(t, c.Get(ctx, "session:a", &got), ErrNotConfigured)
	assert.ErrorIs(t, c.Delete(ctx, "session:a"), ErrNotConfigured)
	assert.ErrorIs(t, c.Ping(ctx), ErrNotConfigured)
	assert.NoError(t, c.Close())
}

func TestUnreachableRedis_ReadThroughMisses(t *testing.T) {
	c := unreachable(t)
	ctx := context.Background()
	var got entry

	c.Remember(ctx, "job:1", entry{ID: 1}, time.Minute)
	assert.False(t, c.Lookup(ctx, "job:1", &got))
	assert.Zero(t, got.ID)
}

func TestUnreachableRedis_StrictCallsFail(t *testing.T) {
	c := unreachable(t)
	ctx := context.Background()
	var got entry

	err := c.Set(ctx, "session:a", entry{ID: 1}, time.Minute)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotConfigured)

	err = c.Get(ctx, "session:a", &got)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.Error(t, c.Delete(ctx, "session:a"))
	assert.Error(t, c.Ping(ctx))
}

func TestSet_UnencodableValue(t *testing.T) {
	c := unreachable(t)

	err := c.Set(context.Background(), "bad", make(chan int), time.Minute)
	assert.ErrorContains(t, err, "encode bad")
}
