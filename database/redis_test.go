package database

import (
	"context"
	"testing"

	"kucukaslan/timeapp/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheVisits(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	require.NoError(t, InitRedis(ctx, &config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"}))
	t.Cleanup(func() { _ = CloseRedis() })

	cache := GetRedisCache()
	require.True(t, cache.Connected())
	require.NoError(t, cache.HealthCheck(ctx))

	_, found, err := cache.GetVisits(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	for i := int64(1); i <= 3; i++ {
		n, err := cache.IncrVisits(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	total, found, err := cache.GetVisits(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), total)

	stored, err := mr.Get(VisitsTotalKey)
	require.NoError(t, err)
	assert.Equal(t, "3", stored)
}

func TestInitRedisDisabled(t *testing.T) {
	require.NoError(t, InitRedis(context.Background(), &config.RedisConfig{}))

	cache := GetRedisCache()
	assert.False(t, cache.Connected())
	assert.Error(t, cache.HealthCheck(context.Background()))
	_, err := cache.IncrVisits(context.Background())
	assert.Error(t, err)
}

func TestInitRedisInvalidURL(t *testing.T) {
	err := InitRedis(context.Background(), &config.RedisConfig{URL: "http://not-redis"})
	assert.Error(t, err)
	assert.False(t, GetRedisCache().Connected())
}

func TestInitRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	err := InitRedis(context.Background(), &config.RedisConfig{URL: "redis://" + addr})
	assert.Error(t, err)
	assert.False(t, GetRedisCache().Connected())
}
