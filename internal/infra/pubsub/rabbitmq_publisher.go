package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"coffeeshop/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher sends persistent messages to a durable queue through
// the default exchange.
type rabbitMQPublisher struct {
	conn   *amqp.Connection
	queue  string
	logger *slog.Logger

	// guards ch; an amqp channel is not safe for concurrent publishes
	mu sync.Mutex
	ch *amqp.Channel
}

// NewRabbitMQPublisher dials url and declares queue.
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial RabbitMQ")
	}

	ch, err := declareQueue(conn, queue)
	if err != nil {
		_ = conn.Close()

		return nil, err
	}

	logger.Info("Connected to RabbitMQ", slog.String("queue", queue))

	return &rabbitMQPublisher{conn: conn, ch: ch, queue: queue, logger: logger}, nil
}

func declareQueue(conn *amqp.Connection, queue string) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	const (
		durable    = true
		autoDelete = false
		exclusive  = false
		noWait     = false
	)
	if _, err := ch.QueueDeclare(queue, durable, autoDelete, exclusive, noWait, nil); err != nil {
		_ = ch.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	return ch, nil
}

func (p *rabbitMQPublisher) PublishRecommendationEvent(ctx context.Context, event *service.RecommendationEvent) error {
	env, err := newEnvelope(event)
	if err != nil {
		return err
	}

	headers := make(amqp.Table, len(env.attributes))
	for k, v := range env.attributes {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		MessageId:     env.eventID,
		CorrelationId: env.requestID,
		Type:          env.name,
		Headers:       headers,
		Body:          env.body,
	}

	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "failed to publish to RabbitMQ")
	}

	p.logger.DebugContext(ctx, "Recommendation event published", env.logAttrs(
		slog.String("broker", "rabbitmq"),
		slog.String("queue", p.queue),
	)...)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		_ = p.conn.Close()

		return errors.Wrap(err, "failed to close RabbitMQ channel")
	}
	if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return errors.Wrap(err, "failed to close RabbitMQ connection")
	}

	return nil
}
