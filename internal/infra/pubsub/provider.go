package pubsub

import (
	"context"
	"log/slog"

	"coffeeshop/config"
	"coffeeshop/internal/domain/constants"
	"coffeeshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type openFunc func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

// setting is a config value a provider cannot start without.
type setting struct {
	label string
	value string
}

func openLocal(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if err := checkSettings(cfg.Provider, setting{"local endpoint", cfg.LocalEndpoint}); err != nil {
		return nil, err
	}

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
}

func openGoogle(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if err := checkSettings(cfg.Provider,
		setting{"project ID", cfg.ProjectID},
		setting{"topic ID", cfg.TopicID},
	); err != nil {
		return nil, err
	}

	return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
}

func openRabbitMQ(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if err := checkSettings(cfg.Provider,
		setting{"amqp URL", cfg.AMQPURL},
		setting{"queue", cfg.Queue},
	); err != nil {
		return nil, err
	}

	return NewRabbitMQPublisher(cfg.AMQPURL, cfg.Queue, logger)
}

func checkSettings(provider string, settings ...setting) error {
	for _, s := range settings {
		if s.value == "" {
			return errors.Errorf("%s is required for %s provider", s.label, provider)
		}
	}

	return nil
}

func opener(provider string) (openFunc, bool) {
	switch provider {
	case constants.PubSubProviderLocal:
		return openLocal, true
	case constants.PubSubProviderGoogle:
		return openGoogle, true
	case constants.PubSubProviderRabbitMQ:
		return openRabbitMQ, true
	default:
		return nil, false
	}
}

// NewEventPublisher picks the broker named by pubsub.provider. An empty
// provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Event publishing disabled, no pubsub provider configured")

		return &noopPublisher{logger: logger}, nil
	}

	open, ok := opener(cfg.Provider)
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := open(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
