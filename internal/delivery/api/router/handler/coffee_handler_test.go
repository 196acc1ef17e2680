package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"coffeeshop/internal/domain/entity"
	domainerrors "coffeeshop/internal/domain/errors"
	"coffeeshop/internal/errors"
	mockUsecase "coffeeshop/internal/mocks/usecase"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCoffeeTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockCoffeeUsecase) {
	t.Helper()

	coffeeUC := mockUsecase.NewMockCoffeeUsecase(t)
	h := NewCoffeeHandler(CoffeeHandlerParams{
		CoffeeUC: coffeeUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := newTestEcho(func(e *echo.Echo) {
		g := e.Group("/coffees")
		g.GET("", h.ListCoffees)
		g.POST("", h.CreateCoffee)
		g.GET("/:id", h.GetCoffee)
		g.PATCH("/:id", h.UpdateCoffee)
		g.DELETE("/:id", h.RemoveCoffee)
		g.POST("/:id/recommend", h.RecommendCoffee)
	})

	return e, coffeeUC
}

func sampleCoffee() *entity.Coffee {
	return &entity.Coffee{
		ID:    1,
		Name:  "Shipwreck Roast",
		Brand: "Buddy Brew",
		Flavors: []*entity.Flavor{
			{ID: 1, Name: "chocolate"},
			{ID: 2, Name: "vanilla"},
		},
	}
}

func TestCoffeeHandler_ListCoffees(t *testing.T) {
	t.Run("passes pagination through", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			ListCoffees(mock.Anything, usecase.PaginationQuery{Offset: 4, Limit: 2}).
			Return([]*entity.Coffee{sampleCoffee()}, nil).
			Once()

		rec, env := doRequest(t, e, http.MethodGet, "/coffees?offset=4&limit=2", "")

		requireStatus(t, rec, http.StatusOK)
		var coffees []*entity.Coffee
		require.NoError(t, json.Unmarshal(env.Data, &coffees))
		require.Len(t, coffees, 1)
		assert.Equal(t, "Shipwreck Roast", coffees[0].Name)
		assert.Equal(t, []string{"chocolate", "vanilla"}, coffees[0].FlavorNames())
	})

	t.Run("defaults to zero values", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			ListCoffees(mock.Anything, usecase.PaginationQuery{}).
			Return([]*entity.Coffee{}, nil).
			Once()

		rec, _ := doRequest(t, e, http.MethodGet, "/coffees", "")

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		e, _ := newCoffeeTestEcho(t)

		rec, env := doRequest(t, e, http.MethodGet, "/coffees?offset=-1", "")

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		e, _ := newCoffeeTestEcho(t)

		rec, env := doRequest(t, e, http.MethodGet, "/coffees?limit=ten", "")

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "INVALID_QUERY", env.Error.Code)
	})
}

func TestCoffeeHandler_GetCoffee(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(m *mockUsecase.MockCoffeeUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			path: "/coffees/1",
			setupMock: func(m *mockUsecase.MockCoffeeUsecase) {
				m.EXPECT().GetCoffee(mock.Anything, uint(1)).Return(sampleCoffee(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/coffees/99",
			setupMock: func(m *mockUsecase.MockCoffeeUsecase) {
				m.EXPECT().GetCoffee(mock.Anything, uint(99)).
					Return(nil, errors.Wrapf(domainerrors.ErrCoffeeNotFound, "coffee #%d not found", 99)).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "COFFEE_NOT_FOUND",
		},
		{
			name:       "invalid id",
			path:       "/coffees/abc",
			setupMock:  func(m *mockUsecase.MockCoffeeUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name:       "zero id",
			path:       "/coffees/0",
			setupMock:  func(m *mockUsecase.MockCoffeeUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
		{
			name: "unexpected error is hidden",
			path: "/coffees/2",
			setupMock: func(m *mockUsecase.MockCoffeeUsecase) {
				m.EXPECT().GetCoffee(mock.Anything, uint(2)).Return(nil, errors.New("connection reset")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, coffeeUC := newCoffeeTestEcho(t)
			tt.setupMock(coffeeUC)

			rec, env := doRequest(t, e, http.MethodGet, tt.path, "")

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				assert.NotContains(t, rec.Body.String(), "connection reset")
			}
		})
	}
}

func TestCoffeeHandler_CreateCoffee(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			CreateCoffee(mock.Anything, &usecase.CreateCoffeeInput{
				Name:    "Shipwreck Roast",
				Brand:   "Buddy Brew",
				Flavors: []string{"chocolate", "vanilla"},
			}).
			Return(sampleCoffee(), nil).
			Once()

		rec, env := doRequest(t, e, http.MethodPost, "/coffees",
			`{"name":"Shipwreck Roast","brand":"Buddy Brew","flavors":["chocolate","vanilla"]}`)

		requireStatus(t, rec, http.StatusCreated)
		var coffee entity.Coffee
		require.NoError(t, json.Unmarshal(env.Data, &coffee))
		assert.Equal(t, uint(1), coffee.ID)
		assert.Equal(t, 0, coffee.Recommendations)
	})

	t.Run("missing required fields", func(t *testing.T) {
		e, _ := newCoffeeTestEcho(t)

		rec, env := doRequest(t, e, http.MethodPost, "/coffees", `{"flavors":["chocolate"]}`)

		requireStatus(t, rec, http.StatusBadRequest)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		details, ok := env.Error.Details.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "name")
		assert.Contains(t, details, "brand")
	})

	t.Run("empty flavor name", func(t *testing.T) {
		e, _ := newCoffeeTestEcho(t)

		rec, env := doRequest(t, e, http.MethodPost, "/coffees",
			`{"name":"Shipwreck Roast","brand":"Buddy Brew","flavors":["chocolate",""]}`)

		requireStatus(t, rec, http.StatusBadRequest)
		details, ok := env.Error.Details.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "flavors[1]")
	})

	t.Run("padded flavor name", func(t *testing.T) {
		e, _ := newCoffeeTestEcho(t)

		rec, env := doRequest(t, e, http.MethodPost, "/coffees",
			`{"name":"Shipwreck Roast","brand":"Buddy Brew","flavors":["chocolate"," vanilla"]}`)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		details, ok := env.Error.Details.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "must not have leading or trailing whitespace", details["flavors[1]"])
	})

	t.Run("malformed json", func(t *testing.T) {
		e, _ := newCoffeeTestEcho(t)

		rec, env := doRequest(t, e, http.MethodPost, "/coffees", `{"name":`)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("creation failure", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			CreateCoffee(mock.Anything, mock.Anything).
			Return(nil, errors.Join(domainerrors.ErrCoffeeCreationFailed, errors.New("insert failed"))).
			Once()

		rec, env := doRequest(t, e, http.MethodPost, "/coffees",
			`{"name":"Shipwreck Roast","brand":"Buddy Brew","flavors":[]}`)

		requireStatus(t, rec, http.StatusInternalServerError)
		assert.Equal(t, "COFFEE_CREATION_FAILED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})
}

func TestCoffeeHandler_UpdateCoffee(t *testing.T) {
	t.Run("partial update without flavors", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			UpdateCoffee(mock.Anything, uint(1), mock.MatchedBy(func(in *usecase.UpdateCoffeeInput) bool {
				return in.Name != nil && *in.Name == "Renamed" && in.Brand == nil && in.Flavors == nil
			})).
			Return(sampleCoffee(), nil).
			Once()

		rec, _ := doRequest(t, e, http.MethodPatch, "/coffees/1", `{"name":"Renamed"}`)

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("empty flavors clears the set", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			UpdateCoffee(mock.Anything, uint(1), mock.MatchedBy(func(in *usecase.UpdateCoffeeInput) bool {
				return in.Flavors != nil && len(in.Flavors) == 0
			})).
			Return(&entity.Coffee{ID: 1, Name: "Shipwreck Roast", Brand: "Buddy Brew", Flavors: []*entity.Flavor{}}, nil).
			Once()

		rec, _ := doRequest(t, e, http.MethodPatch, "/coffees/1", `{"flavors":[]}`)

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		e, _ := newCoffeeTestEcho(t)

		rec, env := doRequest(t, e, http.MethodPatch, "/coffees/1", `{"name":""}`)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			UpdateCoffee(mock.Anything, uint(7), mock.Anything).
			Return(nil, domainerrors.ErrCoffeeNotFound).
			Once()

		rec, env := doRequest(t, e, http.MethodPatch, "/coffees/7", `{"brand":"Other"}`)

		requireStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, "COFFEE_NOT_FOUND", env.Error.Code)
	})
}

func TestCoffeeHandler_RemoveCoffee(t *testing.T) {
	t.Run("returns removed coffee", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().RemoveCoffee(mock.Anything, uint(1)).Return(sampleCoffee(), nil).Once()

		rec, env := doRequest(t, e, http.MethodDelete, "/coffees/1", "")

		requireStatus(t, rec, http.StatusOK)
		var coffee entity.Coffee
		require.NoError(t, json.Unmarshal(env.Data, &coffee))
		assert.Equal(t, "Shipwreck Roast", coffee.Name)
	})

	t.Run("not found", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().RemoveCoffee(mock.Anything, uint(3)).Return(nil, domainerrors.ErrCoffeeNotFound).Once()

		rec, _ := doRequest(t, e, http.MethodDelete, "/coffees/3", "")

		requireStatus(t, rec, http.StatusNotFound)
	})
}

func TestCoffeeHandler_RecommendCoffee(t *testing.T) {
	t.Run("recommended", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().RecommendCoffee(mock.Anything, uint(1)).Return(nil).Once()

		rec, env := doRequest(t, e, http.MethodPost, "/coffees/1/recommend", "")

		requireStatus(t, rec, http.StatusOK)
		assert.Contains(t, string(env.Data), "Coffee recommended successfully")
	})

	t.Run("not found", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			RecommendCoffee(mock.Anything, uint(9)).
			Return(errors.Wrapf(domainerrors.ErrCoffeeNotFound, "coffee #%d not found", 9)).
			Once()

		rec, env := doRequest(t, e, http.MethodPost, "/coffees/9/recommend", "")

		requireStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, "COFFEE_NOT_FOUND", env.Error.Code)
	})

	t.Run("transaction failure", func(t *testing.T) {
		e, coffeeUC := newCoffeeTestEcho(t)
		coffeeUC.EXPECT().
			RecommendCoffee(mock.Anything, uint(1)).
			Return(errors.Join(domainerrors.ErrRecommendationFailed, errors.New("event insert failed"))).
			Once()

		rec, env := doRequest(t, e, http.MethodPost, "/coffees/1/recommend", "")

		requireStatus(t, rec, http.StatusInternalServerError)
		assert.Equal(t, "RECOMMENDATION_FAILED", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "event insert failed")
	})
}
