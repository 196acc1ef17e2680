package service

import (
	"context"
	"time"
)

// RecommendationEvent is published after a recommendation has been committed.
type RecommendationEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    uint      `json:"event_id"`             // ID of the audit row
	CoffeeID   uint      `json:"coffee_id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRecommendationEvent publishes a committed recommendation for downstream consumers
	PublishRecommendationEvent(ctx context.Context, event *RecommendationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
