// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// coffeeRepository implements the repository.CoffeeRepository interface.
type coffeeRepository struct {
	db *gorm.DB
}

// NewCoffeeRepository is the constructor for coffeeRepository.
func NewCoffeeRepository(db *gorm.DB) repository.CoffeeRepository {
	return &coffeeRepository{
		db: db,
	}
}

// List retrieves a page of coffees ordered by ID, with flavors preloaded.
func (repo *coffeeRepository) List(ctx context.Context, offset, limit int) ([]*entity.Coffee, error) {
	var coffeeModels []*model.CoffeeModel

	query := repo.db.WithContext(ctx).
		Preload("Flavors", orderFlavorsByName).
		Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&coffeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coffees")
	}

	coffees := make([]*entity.Coffee, 0, len(coffeeModels))
	for _, coffeeM := range coffeeModels {
		coffees = append(coffees, toCoffeeDomain(coffeeM))
	}

	return coffees, nil
}

// FindByID retrieves a coffee by its ID from the primary, with flavors preloaded.
// Single lookups feed the read cache, so they must not observe replica lag.
func (repo *coffeeRepository) FindByID(ctx context.Context, id uint) (*entity.Coffee, error) {
	var coffeeM model.CoffeeModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Flavors", orderFlavorsByName).
		Where("id = ?", id).
		First(&coffeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCoffeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find coffee by ID")
	}

	return toCoffeeDomain(&coffeeM), nil
}

// Create persists a new coffee. Staged flavors are saved first so that only join rows
// are written together with the coffee.
func (repo *coffeeRepository) Create(ctx context.Context, coffee *entity.Coffee) error {
	if err := saveStagedFlavors(ctx, NewFlavorRepository(repo.db), coffee.Flavors); err != nil {
		return err
	}

	coffeeM := fromCoffeeDomain(coffee)

	if err := repo.db.WithContext(ctx).Omit("Flavors.*").Create(coffeeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCoffeeCreationFailed.WrapMessage("missing required coffee information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCoffeeCreationFailed.WrapMessage("invalid flavor reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create coffee")
	}

	// Update the entity with generated values
	coffee.ID = coffeeM.ID
	coffee.CreatedAt = coffeeM.CreatedAt
	coffee.UpdatedAt = coffeeM.UpdatedAt

	return nil
}

// Update writes the scalar fields of a coffee and optionally replaces its flavor set.
func (repo *coffeeRepository) Update(ctx context.Context, coffee *entity.Coffee, replaceFlavors bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CoffeeModel{ID: coffee.ID}).
		Updates(map[string]any{
			"name":        coffee.Name,
			"description": coffee.Description,
			"brand":       coffee.Brand,
		})

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrCoffeeUpdateFailed.WrapMessage("missing required coffee information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update coffee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCoffeeNotFound
	}

	if !replaceFlavors {
		return nil
	}

	if err := saveStagedFlavors(ctx, NewFlavorRepository(repo.db), coffee.Flavors); err != nil {
		return err
	}

	// Replace rewrites only the join rows; dropped flavors stay in the flavors table.
	if err := repo.db.WithContext(ctx).
		Model(&model.CoffeeModel{ID: coffee.ID}).
		Omit("Flavors.*").
		Association("Flavors").
		Replace(fromFlavorDomainList(coffee.Flavors)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace coffee flavors")
	}

	return nil
}

// Delete removes a coffee and its flavor associations.
func (repo *coffeeRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Select("Flavors").
		Delete(&model.CoffeeModel{ID: id})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete coffee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCoffeeNotFound
	}

	return nil
}

// IncrementRecommendations adds one to the counter in a single UPDATE so concurrent calls never lose increments.
func (repo *coffeeRepository) IncrementRecommendations(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CoffeeModel{}).
		Where("id = ?", id).
		Update("recommendations", gorm.Expr("recommendations + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment recommendations")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCoffeeNotFound
	}

	return nil
}

func orderFlavorsByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// --- Mapper Functions ---

// toCoffeeDomain converts a GORM CoffeeModel to a domain Coffee entity.
func toCoffeeDomain(data *model.CoffeeModel) *entity.Coffee {
	if data == nil {
		return nil
	}

	return &entity.Coffee{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Brand:           data.Brand,
		Recommendations: data.Recommendations,
		Flavors:         toFlavorDomainList(data.Flavors),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromCoffeeDomain converts a domain Coffee entity to a GORM CoffeeModel.
func fromCoffeeDomain(data *entity.Coffee) *model.CoffeeModel {
	if data == nil {
		return nil
	}

	return &model.CoffeeModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Brand:           data.Brand,
		Recommendations: data.Recommendations,
		Flavors:         fromFlavorDomainList(data.Flavors),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
