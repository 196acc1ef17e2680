package repository

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// EventFilter narrows an audit event listing. Empty fields match everything.
type EventFilter struct {
	Type   string
	Name   string
	Offset int
	Limit  int
}

// EventRepository defines the interface for the append-only audit log.
type EventRepository interface {
	// Create appends a new event.
	Create(ctx context.Context, event *entity.Event) error

	// List returns events matching the filter, newest first.
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, error)
}
