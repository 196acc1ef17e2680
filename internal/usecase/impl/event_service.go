package impl

import (
	"context"
	"log/slog"

	"coffeeshop/config"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/domain/repository"
	"coffeeshop/internal/errors"
	"coffeeshop/internal/usecase"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	pages     pageLimits
	logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(eventRepo repository.EventRepository, cfg *config.Config, logger *slog.Logger) usecase.EventUsecase {
	return &eventService{
		eventRepo: eventRepo,
		pages:     newPageLimits(cfg),
		logger:    logger,
	}
}

// ListEvents returns audit events matching the query, newest first.
func (srv *eventService) ListEvents(ctx context.Context, query usecase.EventQuery) ([]*entity.Event, error) {
	offset, limit := srv.pages.normalize(query.Offset, query.Limit)

	events, err := srv.eventRepo.List(ctx, repository.EventFilter{
		Type:   query.Type,
		Name:   query.Name,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to list events", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list events")
	}

	return events, nil
}
