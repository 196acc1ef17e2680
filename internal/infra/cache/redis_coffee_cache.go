package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/errors"

	"github.com/redis/go-redis/v9"
)

// setIfCurrent writes KEYS[1] only while the generation in KEYS[2] still
// equals ARGV[1]. A missing generation counts as 0.
//
//nolint:gochecknoglobals
var setIfCurrent = redis.NewScript(`
local gen = redis.call('GET', KEYS[2])
if (gen or '0') ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisCoffeeCache stores coffees as JSON under "<prefix>:coffee:<id>".
// Each ID also has a generation counter under "<prefix>:coffee:<id>:gen"
// that Invalidate increments. Generation keys carry no TTL so a slow
// reader can never see the counter reset.
type RedisCoffeeCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCoffeeCache creates a cache on top of an existing client.
func NewRedisCoffeeCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCoffeeCache {
	return &RedisCoffeeCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisCoffeeCache) key(id uint) string {
	return c.prefix + ":coffee:" + strconv.FormatUint(uint64(id), 10)
}

func (c *RedisCoffeeCache) genKey(id uint) string {
	return c.key(id) + ":gen"
}

// Get returns the cached coffee or service.ErrCacheMiss.
func (c *RedisCoffeeCache) Get(ctx context.Context, id uint) (*entity.Coffee, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read coffee from cache")
	}

	var coffee entity.Coffee
	if err := json.Unmarshal(data, &coffee); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached coffee")
	}

	return &coffee, nil
}

// Version returns the current generation of id, 0 if it was never invalidated.
func (c *RedisCoffeeCache) Version(ctx context.Context, id uint) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey(id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to read coffee cache generation")
	}

	return gen, nil
}

// Set stores the coffee with the configured TTL if its generation is still version.
func (c *RedisCoffeeCache) Set(ctx context.Context, coffee *entity.Coffee, version int64) error {
	data, err := json.Marshal(coffee)
	if err != nil {
		return errors.Wrap(err, "failed to encode coffee for cache")
	}

	keys := []string{c.key(coffee.ID), c.genKey(coffee.ID)}
	args := []any{strconv.FormatInt(version, 10), data, c.ttl.Milliseconds()}
	if err := setIfCurrent.Run(ctx, c.client, keys, args...).Err(); err != nil {
		return errors.Wrap(err, "failed to write coffee to cache")
	}

	return nil
}

// Invalidate bumps the generation and removes the entry of every ID.
func (c *RedisCoffeeCache) Invalidate(ctx context.Context, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.Incr(ctx, c.genKey(id))
			pipe.Del(ctx, c.key(id))
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to invalidate cached coffees")
	}

	return nil
}

// Close closes the Redis client.
func (c *RedisCoffeeCache) Close() error {
	return c.client.Close()
}
