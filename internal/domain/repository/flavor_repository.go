package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for flavor persistence.
var (
	// ErrFlavorNotFound is returned when no flavor has the requested name.
	ErrFlavorNotFound = errors.New("flavor not found")
)

// FlavorRepository defines the interface for flavor-related database operations.
type FlavorRepository interface {
	// FindByName retrieves a flavor by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Flavor, error)

	// Save inserts a staged flavor. If another writer inserted the same name first,
	// the existing row is loaded instead. The flavor's ID is set in both cases.
	Save(ctx context.Context, flavor *entity.Flavor) error
}
