package usecase

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// PaginationQuery selects a page of results. A zero Limit means the configured default.
type PaginationQuery struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CreateCoffeeInput represents the data needed to create a coffee
type CreateCoffeeInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Brand       string   `json:"brand"`
	Flavors     []string `json:"flavors"`
}

// UpdateCoffeeInput is a partial update. Nil fields are left untouched.
// A non-nil Flavors replaces the whole association set.
type UpdateCoffeeInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Flavors     []string `json:"flavors,omitempty"`
}

// CoffeeUsecase defines the interface for coffee management use cases
type CoffeeUsecase interface {
	// ListCoffees returns a page of coffees with their flavors
	ListCoffees(ctx context.Context, query PaginationQuery) ([]*entity.Coffee, error)

	// GetCoffee retrieves a single coffee
	GetCoffee(ctx context.Context, id uint) (*entity.Coffee, error)

	// CreateCoffee creates a coffee, reusing existing flavors by name
	CreateCoffee(ctx context.Context, input *CreateCoffeeInput) (*entity.Coffee, error)

	// UpdateCoffee merges a partial update onto an existing coffee
	UpdateCoffee(ctx context.Context, id uint, input *UpdateCoffeeInput) (*entity.Coffee, error)

	// RemoveCoffee deletes a coffee and returns it as it was before deletion
	RemoveCoffee(ctx context.Context, id uint) (*entity.Coffee, error)

	// RecommendCoffee increments the recommendation counter and records an audit event atomically
	RecommendCoffee(ctx context.Context, id uint) error
}
