package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	defer s.Close()

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer client.Close()

	c := NewCache(client, time.Minute)
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Total float64 `json:"total"`
	}

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "k1", payload{Name: "tractor", Total: 42.5}))

		var got payload
		hit, err := c.Get(ctx, "k1", &got)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "tractor", got.Name)
		assert.Equal(t, 42.5, got.Total)
	})

	t.Run("MissReturnsFalse", func(t *testing.T) {
		var got payload
		hit, err := c.Get(ctx, "missing", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("ExpiresAfterTTL", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "k2", payload{Name: "pump"}))
		s.FastForward(2 * time.Minute)

		var got payload
		hit, err := c.Get(ctx, "k2", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "k3", payload{Name: "thresher"}))
		require.NoError(t, c.Delete(ctx, "k3"))

		var got payload
		hit, err := c.Get(ctx, "k3", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("NilCacheIsNoOp", func(t *testing.T) {
		var nilCache *Cache

		require.NoError(t, nilCache.Set(ctx, "k4", payload{}))

		var got payload
		hit, err := nilCache.Get(ctx, "k4", &got)
		require.NoError(t, err)
		assert.False(t, hit)
	})
}
