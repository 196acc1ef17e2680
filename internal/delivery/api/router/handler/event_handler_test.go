package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"coffeeshop/internal/domain/entity"
	"coffeeshop/internal/errors"
	mockUsecase "coffeeshop/internal/mocks/usecase"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockEventUsecase) {
	t.Helper()

	eventUC := mockUsecase.NewMockEventUsecase(t)
	h := NewEventHandler(eventUC)

	return newTestEcho(func(e *echo.Echo) {
		e.GET("/events", h.ListEvents)
		e.GET("/health", HealthCheck)
	}), eventUC
}

func TestEventHandler_ListEvents(t *testing.T) {
	t.Run("filters and paginates", func(t *testing.T) {
		e, eventUC := newEventTestEcho(t)
		eventUC.EXPECT().
			ListEvents(mock.Anything, usecase.EventQuery{
				Type:            "coffee",
				Name:            "recommended_coffee",
				PaginationQuery: usecase.PaginationQuery{Offset: 0, Limit: 5},
			}).
			Return([]*entity.Event{entity.NewCoffeeRecommendedEvent(3)}, nil).
			Once()

		rec, env := doRequest(t, e, http.MethodGet, "/events?type=coffee&name=recommended_coffee&limit=5", "")

		requireStatus(t, rec, http.StatusOK)
		var events []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &events))
		require.Len(t, events, 1)
		assert.Equal(t, "coffee", events[0]["type"])
		payload, ok := events[0]["payload"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 3, payload["coffeeId"])
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		e, _ := newEventTestEcho(t)

		rec, env := doRequest(t, e, http.MethodGet, "/events?limit=-3", "")

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		e, eventUC := newEventTestEcho(t)
		eventUC.EXPECT().ListEvents(mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

		rec, env := doRequest(t, e, http.MethodGet, "/events", "")

		requireStatus(t, rec, http.StatusInternalServerError)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	e, _ := newEventTestEcho(t)

	rec, env := doRequest(t, e, http.MethodGet, "/health", "")

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}
