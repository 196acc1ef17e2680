package cache

import (
	"context"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/service"
)

// NoopCoffeeCache always misses.
type NoopCoffeeCache struct{}

// NewNoopCoffeeCache creates a cache that stores nothing.
func NewNoopCoffeeCache() *NoopCoffeeCache {
	return &NoopCoffeeCache{}
}

func (NoopCoffeeCache) Get(context.Context, uint) (*entity.Coffee, error) {
	return nil, service.ErrCacheMiss
}

func (NoopCoffeeCache) Version(context.Context, uint) (int64, error) { return 0, nil }

func (NoopCoffeeCache) Set(context.Context, *entity.Coffee, int64) error { return nil }

func (NoopCoffeeCache) Invalidate(context.Context, ...uint) error { return nil }

func (NoopCoffeeCache) Close() error { return nil }
