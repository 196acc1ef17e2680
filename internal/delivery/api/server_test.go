package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffeeshop/config"
	apimiddleware "coffeeshop/internal/delivery/api/middleware"
	"coffeeshop/internal/delivery/api/router"
	"coffeeshop/internal/delivery/api/router/handler"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/domain/entity"
	mockUsecase "coffeeshop/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type testResponse struct {
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T, opts ...func(*config.Config)) (*apiServer, *mockUsecase.MockCoffeeUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	for _, opt := range opts {
		opt(cfg)
	}

	coffeeUC := mockUsecase.NewMockCoffeeUsecase(t)
	eventUC := mockUsecase.NewMockEventUsecase(t)

	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc:           lc,
		Cfg:          cfg,
		Logger:       logger,
		ErrorHandler: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			CoffeeHandler: handler.NewCoffeeHandler(handler.CoffeeHandlerParams{CoffeeUC: coffeeUC, Logger: logger}),
			EventHandler:  handler.NewEventHandler(eventUC),
		},
	})
	require.NoError(t, err)

	apiSrv, ok := srv.(*apiServer)
	require.True(t, ok)

	return apiSrv, coffeeUC
}

func serve(t *testing.T, srv *apiServer, req *http.Request) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	var body testResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return rec, body
}

func TestServer_Routes(t *testing.T) {
	srv, coffeeUC := newTestServer(t)
	coffeeUC.EXPECT().GetCoffee(mock.Anything, uint(1)).Return(&entity.Coffee{ID: 1, Name: "Roast"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coffees/1", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec, body := serve(t, srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	require.NotNil(t, body.Meta)
	assert.Equal(t, "req-42", body.Meta.RequestID)
}

func TestServer_FrameworkErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown route",
			method:     http.MethodGet,
			target:     "/api/v1/teas",
			wantStatus: http.StatusNotFound,
			wantCode:   "ROUTE_NOT_FOUND",
		},
		{
			name:       "wrong method",
			method:     http.MethodPut,
			target:     "/api/v1/coffees/1",
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
		},
		{
			name:       "oversized body",
			method:     http.MethodPost,
			target:     "/api/v1/coffees",
			body:       `{"name":"` + strings.Repeat("x", 4096) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "REQUEST_TOO_LARGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t)

			var reader io.Reader
			if tt.body != "" {
				reader = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.target, reader)
			req.Header.Set("Content-Type", "application/json")
			rec, body := serve(t, srv, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}

func TestServer_TrailingSlash(t *testing.T) {
	srv, coffeeUC := newTestServer(t)
	coffeeUC.EXPECT().ListCoffees(mock.Anything, mock.Anything).Return([]*entity.Coffee{}, nil).Once()

	rec, _ := serve(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/coffees/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_HandlerTimeout(t *testing.T) {
	srv, coffeeUC := newTestServer(t, func(cfg *config.Config) {
		cfg.HTTP.Timeouts.HandlerTimeout = 20 * time.Millisecond
	})
	coffeeUC.EXPECT().
		GetCoffee(mock.Anything, uint(1)).
		RunAndReturn(func(ctx context.Context, _ uint) (*entity.Coffee, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		}).
		Once()

	rec, body := serve(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/coffees/1", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "REQUEST_ABORTED", body.Error.Code)
}
