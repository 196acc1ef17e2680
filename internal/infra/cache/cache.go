// Package cache provides the coffee read cache backed by Redis.
package cache

import (
	"context"
	"log/slog"

	"coffeeshop/config"
	"coffeeshop/internal/domain/lifecycle"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCoffeeCache creates the coffee cache. Caching is disabled when no Redis address is configured.
func NewCoffeeCache(params Params) (service.CoffeeCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Coffee cache disabled, no redis address configured")

		return NewNoopCoffeeCache(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	coffeeCache := NewRedisCoffeeCache(client, cfg.Prefix, cfg.TTL)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Coffee cache connected", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.TTL))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return coffeeCache.Close()
		},
	})

	return coffeeCache, nil
}
