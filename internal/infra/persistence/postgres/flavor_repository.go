package postgres

import (
	"context"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// flavorRepository implements the repository.FlavorRepository interface.
type flavorRepository struct {
	db *gorm.DB
}

// NewFlavorRepository is the constructor for flavorRepository.
func NewFlavorRepository(db *gorm.DB) repository.FlavorRepository {
	return &flavorRepository{
		db: db,
	}
}

// FindByName retrieves a flavor by its exact name.
func (repo *flavorRepository) FindByName(ctx context.Context, name string) (*entity.Flavor, error) {
	var flavorM model.FlavorModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&flavorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFlavorNotFound
		}

		return nil, errors.Wrap(err, "failed to find flavor by name")
	}

	return toFlavorDomain(&flavorM), nil
}

// Save inserts a flavor, falling back to the existing row when the name is already taken.
func (repo *flavorRepository) Save(ctx context.Context, flavor *entity.Flavor) error {
	flavorM := &model.FlavorModel{Name: flavor.Name}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(flavorM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrFlavorConflict.WrapMessage(flavor.Name)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create flavor")
	}

	// No row returned: a concurrent writer inserted the same name first.
	if result.RowsAffected == 0 {
		if err := repo.db.WithContext(ctx).
			Where("name = ?", flavor.Name).
			First(flavorM).Error; err != nil {
			return errors.Wrap(err, "failed to reload conflicting flavor")
		}
	}

	flavor.ID = flavorM.ID

	return nil
}

// saveStagedFlavors stores every flavor that has no ID yet through repo.Save.
func saveStagedFlavors(ctx context.Context, repo repository.FlavorRepository, flavors []*entity.Flavor) error {
	for _, flavor := range flavors {
		if !flavor.IsStaged() {
			continue
		}

		if err := repo.Save(ctx, flavor); err != nil {
			return err
		}
	}

	return nil
}

// --- Mapper Functions ---

// toFlavorDomain converts a GORM FlavorModel to a domain Flavor entity.
func toFlavorDomain(data *model.FlavorModel) *entity.Flavor {
	if data == nil {
		return nil
	}

	return &entity.Flavor{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toFlavorDomainList(data []*model.FlavorModel) []*entity.Flavor {
	flavors := make([]*entity.Flavor, 0, len(data))
	for _, flavorM := range data {
		flavors = append(flavors, toFlavorDomain(flavorM))
	}

	return flavors
}

// fromFlavorDomain converts a domain Flavor entity to a GORM FlavorModel.
func fromFlavorDomain(data *entity.Flavor) *model.FlavorModel {
	if data == nil {
		return nil
	}

	return &model.FlavorModel{
		ID:   data.ID,
		Name: data.Name,
	}
}

func fromFlavorDomainList(data []*entity.Flavor) []*model.FlavorModel {
	flavors := make([]*model.FlavorModel, 0, len(data))
	for _, flavor := range data {
		flavors = append(flavors, fromFlavorDomain(flavor))
	}

	return flavors
}
