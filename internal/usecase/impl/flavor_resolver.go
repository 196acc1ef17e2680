package impl

import (
	"context"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/errors"
)

// resolveFlavors maps flavor names to stored flavors by exact name, staging
// a new unsaved flavor for every name that does not exist yet. Duplicates
// are dropped and the first occurrence keeps its position. Names are not
// normalized; the HTTP layer rejects padded ones. Nothing is written here; staged
// flavors are persisted when the coffee is saved.
func resolveFlavors(ctx context.Context, flavorRepo repository.FlavorRepository, names []string) ([]*entity.Flavor, error) {
	seen := make(map[string]struct{}, len(names))
	flavors := make([]*entity.Flavor, 0, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		flavor, err := flavorRepo.FindByName(ctx, name)
		switch {
		case err == nil:
			flavors = append(flavors, flavor)
		case errors.Is(err, repository.ErrFlavorNotFound):
			flavors = append(flavors, &entity.Flavor{Name: name})
		default:
			return nil, errors.Wrapf(err, "failed to resolve flavor %q", name)
		}
	}

	return flavors, nil
}
