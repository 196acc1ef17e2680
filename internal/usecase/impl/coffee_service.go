// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/errors"
	"coffeeshop/internal/usecase"

	"go.uber.org/fx"
)

// coffeeService implements the CoffeeUsecase interface.
type coffeeService struct {
	coffeeRepo repository.CoffeeRepository
	txManager  repository.TransactionManager
	cache      service.CoffeeCache
	publisher  service.EventPublisher
	pages      pageLimits
	logger     *slog.Logger
}

// CoffeeServiceParams holds dependencies for CoffeeService, injected by Fx.
type CoffeeServiceParams struct {
	fx.In

	CoffeeRepo repository.CoffeeRepository
	TxManager  repository.TransactionManager
	Cache      service.CoffeeCache
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCoffeeService is the constructor for coffeeService.
func NewCoffeeService(params CoffeeServiceParams) usecase.CoffeeUsecase {
	return &coffeeService{
		coffeeRepo: params.CoffeeRepo,
		txManager:  params.TxManager,
		cache:      params.Cache,
		publisher:  params.Publisher,
		pages:      newPageLimits(params.Config),
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *coffeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCoffees returns a page of coffees ordered by ID.
func (srv *coffeeService) ListCoffees(ctx context.Context, query usecase.PaginationQuery) ([]*entity.Coffee, error) {
	offset, limit := srv.pages.normalize(query.Offset, query.Limit)

	coffees, err := srv.coffeeRepo.List(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list coffees", slog.Any("error", err), slog.Int("offset", offset), slog.Int("limit", limit))

		return nil, errors.Wrap(err, "failed to list coffees")
	}

	return coffees, nil
}

// GetCoffee reads through the cache and falls back to the repository.
// The cache generation is taken before the database read, so a fill that
// races with a committed write's invalidation is dropped instead of
// caching the older row.
func (srv *coffeeService) GetCoffee(ctx context.Context, id uint) (*entity.Coffee, error) {
	cached, err := srv.cache.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Coffee cache read failed", slog.Any("error", err), slog.Uint64("coffee_id", uint64(id)))
	}

	version, verErr := srv.cache.Version(ctx, id)
	if verErr != nil {
		srv.log(ctx).Warn("Coffee cache version read failed", slog.Any("error", verErr), slog.Uint64("coffee_id", uint64(id)))
	}

	coffee, err := srv.coffeeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCoffeeNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCoffeeNotFound, "coffee #%d not found", id)
		}

		return nil, errors.Wrap(err, "failed to find coffee")
	}

	if verErr == nil {
		if err := srv.cache.Set(ctx, coffee, version); err != nil {
			srv.log(ctx).Warn("Coffee cache write failed", slog.Any("error", err), slog.Uint64("coffee_id", uint64(id)))
		}
	}

	return coffee, nil
}

// CreateCoffee resolves the flavors by name and stores the coffee with its associations.
func (srv *coffeeService) CreateCoffee(ctx context.Context, input *usecase.CreateCoffeeInput) (*entity.Coffee, error) {
	srv.log(ctx).Info("Creating coffee", slog.String("name", input.Name), slog.String("brand", input.Brand))

	var created *entity.Coffee

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		coffeeRepo := repoFactory.CoffeeRepo()

		// 1. Resolve flavors, staging unknown names
		flavors, err := resolveFlavors(ctx, repoFactory.FlavorRepo(), input.Flavors)
		if err != nil {
			return err
		}

		// 2. Save the coffee and its join rows
		coffee := &entity.Coffee{
			Name:        input.Name,
			Description: input.Description,
			Brand:       input.Brand,
			Flavors:     flavors,
		}
		if err := coffeeRepo.Create(ctx, coffee); err != nil {
			return errors.Wrap(err, "failed to create coffee")
		}

		// 3. Reload so the result matches a later read
		created, err = coffeeRepo.FindByID(ctx, coffee.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload coffee")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create coffee", slog.Any("error", err))

		return nil, withAppError(err, domainerrors.ErrCoffeeCreationFailed)
	}
	srv.log(ctx).Info("Coffee created", slog.Uint64("coffee_id", uint64(created.ID)))

	return created, nil
}

// UpdateCoffee loads the coffee, merges the patch and saves it.
func (srv *coffeeService) UpdateCoffee(ctx context.Context, id uint, input *usecase.UpdateCoffeeInput) (*entity.Coffee, error) {
	srv.log(ctx).Info("Updating coffee", slog.Uint64("coffee_id", uint64(id)))

	var updated *entity.Coffee

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		coffeeRepo := repoFactory.CoffeeRepo()

		// 1. Preload the current state
		coffee, err := coffeeRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		// 2. Merge the patch
		if input.Name != nil {
			coffee.Name = *input.Name
		}
		if input.Description != nil {
			coffee.Description = input.Description
		}
		if input.Brand != nil {
			coffee.Brand = *input.Brand
		}

		replaceFlavors := input.Flavors != nil
		if replaceFlavors {
			coffee.Flavors, err = resolveFlavors(ctx, repoFactory.FlavorRepo(), input.Flavors)
			if err != nil {
				return err
			}
		}

		// 3. Save and reload
		if err := coffeeRepo.Update(ctx, coffee, replaceFlavors); err != nil {
			return errors.Wrap(err, "failed to update coffee")
		}

		updated, err = coffeeRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload coffee")
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrCoffeeNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCoffeeNotFound, "coffee #%d not found", id)
		}
		srv.log(ctx).Error("Failed to update coffee", slog.Any("error", err), slog.Uint64("coffee_id", uint64(id)))

		return nil, withAppError(err, domainerrors.ErrCoffeeUpdateFailed)
	}

	srv.invalidate(ctx, id)

	return updated, nil
}

// RemoveCoffee deletes the coffee and returns it as it was before deletion.
func (srv *coffeeService) RemoveCoffee(ctx context.Context, id uint) (*entity.Coffee, error) {
	srv.log(ctx).Info("Removing coffee", slog.Uint64("coffee_id", uint64(id)))

	var removed *entity.Coffee

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		coffeeRepo := repoFactory.CoffeeRepo()

		coffee, err := coffeeRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := coffeeRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete coffee")
		}
		removed = coffee

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrCoffeeNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCoffeeNotFound, "coffee #%d not found", id)
		}
		srv.log(ctx).Error("Failed to remove coffee", slog.Any("error", err), slog.Uint64("coffee_id", uint64(id)))

		return nil, withAppError(err, domainerrors.ErrTransactionFailed)
	}

	srv.invalidate(ctx, id)

	return removed, nil
}

// RecommendCoffee increments the counter and appends the audit event in one transaction.
// Cache invalidation and event publishing happen only after the commit.
func (srv *coffeeService) RecommendCoffee(ctx context.Context, id uint) error {
	srv.log(ctx).Info("Recommending coffee", slog.Uint64("coffee_id", uint64(id)))

	var event *entity.Event

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Atomic counter increment
		if err := repoFactory.CoffeeRepo().IncrementRecommendations(ctx, id); err != nil {
			return errors.Wrap(err, "failed to increment recommendations")
		}

		// 2. Audit event
		event = entity.NewCoffeeRecommendedEvent(id)
		if err := repoFactory.EventRepo().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to record recommendation event")
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrCoffeeNotFound) {
			return errors.Wrapf(domainerrors.ErrCoffeeNotFound, "coffee #%d not found", id)
		}
		srv.log(ctx).Error("Failed to recommend coffee", slog.Any("error", err), slog.Uint64("coffee_id", uint64(id)))

		return errors.Join(domainerrors.ErrRecommendationFailed, err)
	}

	srv.invalidate(ctx, id)
	srv.publishRecommendation(ctx, id, event)

	return nil
}

// invalidate drops a stale cache entry. The write is already committed, so failures are only logged.
func (srv *coffeeService) invalidate(ctx context.Context, id uint) {
	if err := srv.cache.Invalidate(ctx, id); err != nil {
		srv.log(ctx).Warn("Coffee cache invalidation failed", slog.Any("error", err), slog.Uint64("coffee_id", uint64(id)))
	}
}

func (srv *coffeeService) publishRecommendation(ctx context.Context, coffeeID uint, event *entity.Event) {
	occurredAt := event.CreatedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	msg := &service.RecommendationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    event.ID,
		CoffeeID:   coffeeID,
		Type:       event.Type,
		Name:       event.Name,
		OccurredAt: occurredAt,
	}

	if err := srv.publisher.PublishRecommendationEvent(ctx, msg); err != nil {
		srv.log(ctx).Warn("Failed to publish recommendation event",
			slog.Any("error", err),
			slog.Uint64("event_id", uint64(event.ID)),
			slog.Uint64("coffee_id", uint64(coffeeID)),
		)
	}
}

// withAppError keeps errors that already carry an HTTP mapping and tags everything else with fallback.
func withAppError(err error, fallback *domainerrors.BaseError) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Join(fallback, err)
}
