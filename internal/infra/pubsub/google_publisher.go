package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"coffeeshop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type googlePubSubPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies topicID exists
// before returning an ordered publisher for it.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	name := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not available", name)
	}

	topic := client.Publisher(topicID)
	topic.EnableMessageOrdering = true

	logger.Info("Connected to Google Pub/Sub", slog.String("topic", name))

	return &googlePubSubPublisher{client: client, topic: topic, logger: logger}, nil
}

func (p *googlePubSubPublisher) PublishRecommendationEvent(ctx context.Context, event *service.RecommendationEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data:        env.body,
		Attributes:  env.attributes,
		OrderingKey: env.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses its key until resumed.
		p.topic.ResumePublish(env.orderingKey)

		return errors.Wrap(err, "failed to publish to Google Pub/Sub")
	}

	p.logger.DebugContext(ctx, "Recommendation event published", env.logAttrs(
		slog.String("broker", "google"),
		slog.String("server_id", serverID),
	)...)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
