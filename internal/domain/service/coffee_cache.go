package service

import (
	"context"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned by CoffeeCache.Get when no entry exists.
var ErrCacheMiss = errors.New("cache miss")

// CoffeeCache is a read-through cache for single coffee lookups.
type CoffeeCache interface {
	// Get returns the cached coffee or ErrCacheMiss.
	Get(ctx context.Context, id uint) (*entity.Coffee, error)

	// Version returns the invalidation generation of id. Take it before
	// reading the coffee from the database and hand it to Set.
	Version(ctx context.Context, id uint) (int64, error)

	// Set stores the coffee under its ID unless the ID was invalidated
	// after version was taken. A skipped write is not an error.
	Set(ctx context.Context, coffee *entity.Coffee, version int64) error

	// Invalidate drops the entries for the given IDs and bumps their
	// generation so in-flight fills from older reads are discarded.
	Invalidate(ctx context.Context, ids ...uint) error

	// Close releases any resources held by the cache
	Close() error
}
