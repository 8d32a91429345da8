package cache_test

import (
	"context"
	"stayledger/shared/cache"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboard struct {
	Month     string  `json:"month"`
	Occupancy float64 `json:"occupancy"`
}

func TestMemoryCache_SaveGet(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryCache()

	var out dashboard
	assert.ErrorIs(t, mem.Get(ctx, "metrics:dashboard:2025-12", &out), cache.ErrMiss)

	require.NoError(t, mem.Save(ctx, "metrics:dashboard:2025-12", dashboard{Month: "2025-12", Occupancy: 22.5}, 60))
	require.NoError(t, mem.Get(ctx, "metrics:dashboard:2025-12", &out))
	assert.Equal(t, dashboard{Month: "2025-12", Occupancy: 22.5}, out)

	require.NoError(t, mem.Save(ctx, "raw", "plain", 60))

	var raw string
	require.NoError(t, mem.Get(ctx, "raw", &raw))
	assert.Equal(t, "plain", raw)

	require.NoError(t, mem.Delete(ctx, "raw"))
	assert.ErrorIs(t, mem.Get(ctx, "raw", &raw), cache.ErrMiss)
}

func TestMemoryCache_ClearByPrefix(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryCache()

	require.NoError(t, mem.Save(ctx, "metrics:a", 1, 60))
	require.NoError(t, mem.Save(ctx, "metrics:b", 2, 60))
	require.NoError(t, mem.Save(ctx, "ratelimit:c", 3, 60))

	require.NoError(t, mem.Clear(ctx, "metrics:"))

	var value int
	assert.ErrorIs(t, mem.Get(ctx, "metrics:a", &value), cache.ErrMiss)
	assert.ErrorIs(t, mem.Get(ctx, "metrics:b", &value), cache.ErrMiss)
	require.NoError(t, mem.Get(ctx, "ratelimit:c", &value))
	assert.Equal(t, 3, value)
}

func TestMemoryCache_Incr(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryCache()

	for want := int64(1); want <= 3; want++ {
		count, err := mem.Incr(ctx, "ratelimit:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	count, err := mem.Incr(ctx, "ratelimit:10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryCache()

	count, err := mem.Incr(ctx, "window", 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	time.Sleep(40 * time.Millisecond)

	count, err = mem.Incr(ctx, "window", 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
