package usecase

import (
	"context"

	"coffeeshop/internal/domain/entity"
)

// EventQuery filters the audit log
type EventQuery struct {
	Type string `json:"type"`
	Name string `json:"name"`
	PaginationQuery
}

// EventUsecase defines the interface for reading the audit log
type EventUsecase interface {
	// ListEvents returns audit events, newest first
	ListEvents(ctx context.Context, query EventQuery) ([]*entity.Event, error)
}
