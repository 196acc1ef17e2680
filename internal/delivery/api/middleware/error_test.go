package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		hidden     string
	}{
		{
			name:       "app error",
			err:        errors.Wrapf(domainerrors.ErrCoffeeNotFound, "coffee #%d not found", 4),
			wantStatus: http.StatusNotFound,
			wantCode:   "COFFEE_NOT_FOUND",
		},
		{
			name:       "joined app error hides cause",
			err:        errors.Join(domainerrors.ErrRecommendationFailed, errors.New("deadlock detected")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "RECOMMENDATION_FAILED",
			hidden:     "deadlock detected",
		},
		{
			name:       "echo not found",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "ROUTE_NOT_FOUND",
		},
		{
			name:       "echo bad request",
			err:        echo.NewHTTPError(http.StatusBadRequest, "bad"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "deadline exceeded",
			err:        errors.Wrap(context.DeadlineExceeded, "failed to find coffee"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "REQUEST_ABORTED",
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			hidden:     "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/coffees/4", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.hidden != "" {
				assert.NotContains(t, rec.Body.String(), tt.hidden)
			}
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
