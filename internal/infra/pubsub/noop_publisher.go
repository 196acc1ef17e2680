package pubsub

import (
	"context"
	"log/slog"

	"coffeeshop/internal/domain/service"
)

// noopPublisher drops events when no broker is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishRecommendationEvent(_ context.Context, event *service.RecommendationEvent) error {
	if p.logger != nil && event != nil {
		p.logger.Debug("Event publishing disabled, dropping recommendation event",
			slog.Uint64(attrEventID, uint64(event.EventID)),
			slog.Uint64(attrCoffeeID, uint64(event.CoffeeID)),
		)
	}

	return nil
}

func (p *noopPublisher) Close() error { return nil }
