package handler

import (
	"net/http"

	"coffeeshop/internal/delivery/api/response"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// EventHandler serves the audit log
type EventHandler struct {
	eventUC usecase.EventUsecase
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(eventUC usecase.EventUsecase) *EventHandler {
	return &EventHandler{eventUC: eventUC}
}

// ListEventsRequest filters the audit log by type and name
type ListEventsRequest struct {
	Type   string `query:"type" validate:"max=100"`
	Name   string `query:"name" validate:"max=100"`
	Offset int    `query:"offset" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c echo.Context) error {
	var req ListEventsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid event query")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	events, err := h.eventUC.ListEvents(c.Request().Context(), usecase.EventQuery{
		Type: req.Type,
		Name: req.Name,
		PaginationQuery: usecase.PaginationQuery{
			Offset: req.Offset,
			Limit:  req.Limit,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, events)
}
