package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"coffeeshop/config"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestCache(t *testing.T) (*RedisCoffeeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCoffeeCache(client, "test", time.Minute), mr
}

func testCoffee() *entity.Coffee {
	description := "Notes of cocoa"
	ts := time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)

	return &entity.Coffee{
		ID:              5,
		Name:            "Roundtrip",
		Description:     &description,
		Brand:           "Nestle",
		Recommendations: 3,
		Flavors:         []*entity.Flavor{{ID: 1, Name: "chocolate"}},
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
}

func TestRedisCoffeeCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	coffee := testCoffee()

	require.NoError(t, c.Set(ctx, coffee, 0))
	assert.True(t, mr.Exists("test:coffee:5"))
	assert.Equal(t, time.Minute, mr.TTL("test:coffee:5"))

	got, err := c.Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, coffee, got)
}

func TestRedisCoffeeCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), 404)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCoffeeCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testCoffee(), 0))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, 5)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCoffeeCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	first := testCoffee()
	second := testCoffee()
	second.ID = 6

	require.NoError(t, c.Set(ctx, first, 0))
	require.NoError(t, c.Set(ctx, second, 0))

	require.NoError(t, c.Invalidate(ctx, 5, 6, 7))
	assert.False(t, mr.Exists("test:coffee:5"))
	assert.False(t, mr.Exists("test:coffee:6"))

	require.NoError(t, c.Invalidate(ctx))
}

func TestRedisCoffeeCache_Version(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	version, err := c.Version(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	require.NoError(t, c.Invalidate(ctx, 5))
	require.NoError(t, c.Invalidate(ctx, 5))

	version, err = c.Version(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
	assert.Equal(t, time.Duration(0), mr.TTL("test:coffee:5:gen"))
}

func TestRedisCoffeeCache_SetAfterInvalidateIsDropped(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	coffee := testCoffee()

	version, err := c.Version(ctx, coffee.ID)
	require.NoError(t, err)

	// a write commits and invalidates while the reader is still in the database
	require.NoError(t, c.Invalidate(ctx, coffee.ID))

	require.NoError(t, c.Set(ctx, coffee, version))
	assert.False(t, mr.Exists("test:coffee:5"))

	_, err = c.Get(ctx, coffee.ID)
	assert.ErrorIs(t, err, service.ErrCacheMiss)

	current, err := c.Version(ctx, coffee.ID)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, coffee, current))
	assert.True(t, mr.Exists("test:coffee:5"))
	assert.Equal(t, time.Minute, mr.TTL("test:coffee:5"))
}

func TestRedisCoffeeCache_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("test:coffee:9", "{not json"))

	_, err := c.Get(context.Background(), 9)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCoffeeCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, err := c.Get(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestNewCoffeeCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled without address", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)

		c, err := NewCoffeeCache(Params{Lifecycle: lc, Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &NoopCoffeeCache{}, c)

		_, err = c.Get(context.Background(), 1)
		assert.ErrorIs(t, err, service.ErrCacheMiss)
	})

	t.Run("redis when configured", func(t *testing.T) {
		mr := miniredis.RunT(t)
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), Prefix: "app", TTL: time.Minute}}

		c, err := NewCoffeeCache(Params{Lifecycle: lc, Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &RedisCoffeeCache{}, c)

		lc.RequireStart()
		require.NoError(t, c.Set(context.Background(), testCoffee(), 0))
		assert.True(t, mr.Exists("app:coffee:5"))
		lc.RequireStop()
	})
}
