// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for coffee persistence.
var (
	// ErrCoffeeNotFound is returned when no coffee has the requested ID.
	ErrCoffeeNotFound = errors.New("coffee not found")
)

// CoffeeRepository defines the interface for coffee-related database operations.
// Every read loads the coffee's flavors.
type CoffeeRepository interface {
	// List returns a page of coffees ordered by ID. An empty page is not an error.
	List(ctx context.Context, offset, limit int) ([]*entity.Coffee, error)

	// FindByID retrieves a coffee by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Coffee, error)

	// Create persists a new coffee together with its flavor associations.
	// Staged flavors are inserted (or re-fetched on a name conflict) before the join rows are written.
	Create(ctx context.Context, coffee *entity.Coffee) error

	// Update writes the scalar fields of an existing coffee.
	// When replaceFlavors is set the association set is replaced by coffee.Flavors.
	Update(ctx context.Context, coffee *entity.Coffee, replaceFlavors bool) error

	// Delete removes a coffee and its join rows. Flavors are kept.
	Delete(ctx context.Context, id uint) error

	// IncrementRecommendations atomically adds one to the recommendation counter.
	IncrementRecommendations(ctx context.Context, id uint) error
}
