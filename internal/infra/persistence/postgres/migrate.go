package postgres

import (
	"context"

	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the coffees, flavors, coffee_flavors and events tables.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.FlavorModel{},
		&model.CoffeeModel{},
		&model.EventModel{},
	); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	return nil
}
