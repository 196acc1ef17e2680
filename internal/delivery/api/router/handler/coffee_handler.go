package handler

import (
	"log/slog"
	"net/http"

	"coffeeshop/internal/delivery/api/response"
	deliverycontext "coffeeshop/internal/delivery/context"
	"coffeeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CoffeeHandlerParams holds dependencies for CoffeeHandler, injected by Fx.
type CoffeeHandlerParams struct {
	fx.In

	CoffeeUC usecase.CoffeeUsecase
	Logger   *slog.Logger
}

// CoffeeHandler holds dependencies for coffee-related handlers
type CoffeeHandler struct {
	coffeeUC usecase.CoffeeUsecase
	logger   *slog.Logger
}

// NewCoffeeHandler is the constructor for CoffeeHandler
func NewCoffeeHandler(params CoffeeHandlerParams) *CoffeeHandler {
	return &CoffeeHandler{
		coffeeUC: params.CoffeeUC,
		logger:   params.Logger,
	}
}

// CreateCoffeeRequest represents the request body for creating a coffee
type CreateCoffeeRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	Brand       string   `json:"brand" validate:"required,max=255"`
	Flavors     []string `json:"flavors" validate:"max=50,dive,required,max=100,trimmed"`
}

// UpdateCoffeeRequest represents a partial update. Omitted fields are unchanged;
// a present flavors array, even an empty one, replaces the current set.
type UpdateCoffeeRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	Brand       *string  `json:"brand" validate:"omitempty,min=1,max=255"`
	Flavors     []string `json:"flavors" validate:"omitempty,max=50,dive,required,max=100,trimmed"`
}

// ListCoffees handles GET /coffees
func (h *CoffeeHandler) ListCoffees(c echo.Context) error {
	var req PaginationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "Invalid pagination parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	coffees, err := h.coffeeUC.ListCoffees(c.Request().Context(), usecase.PaginationQuery{
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coffees)
}

// GetCoffee handles GET /coffees/:id
func (h *CoffeeHandler) GetCoffee(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coffee ID")
	}

	coffee, err := h.coffeeUC.GetCoffee(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coffee)
}

// CreateCoffee handles POST /coffees
func (h *CoffeeHandler) CreateCoffee(c echo.Context) error {
	var req CreateCoffeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coffee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	coffee, err := h.coffeeUC.CreateCoffee(c.Request().Context(), &usecase.CreateCoffeeInput{
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Flavors:     req.Flavors,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Coffee created",
		slog.Uint64("coffee_id", uint64(coffee.ID)),
		slog.Int("flavors", len(coffee.Flavors)),
	)

	return response.Success(c, http.StatusCreated, coffee)
}

// UpdateCoffee handles PATCH /coffees/:id
func (h *CoffeeHandler) UpdateCoffee(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coffee ID")
	}

	var req UpdateCoffeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coffee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	coffee, err := h.coffeeUC.UpdateCoffee(c.Request().Context(), id, &usecase.UpdateCoffeeInput{
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Flavors:     req.Flavors,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, coffee)
}

// RemoveCoffee handles DELETE /coffees/:id and returns the deleted coffee
func (h *CoffeeHandler) RemoveCoffee(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coffee ID")
	}

	coffee, err := h.coffeeUC.RemoveCoffee(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Coffee removed",
		slog.Uint64("coffee_id", uint64(id)),
	)

	return response.Success(c, http.StatusOK, coffee)
}

// RecommendCoffee handles POST /coffees/:id/recommend
func (h *CoffeeHandler) RecommendCoffee(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coffee ID")
	}

	if err := h.coffeeUC.RecommendCoffee(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coffee recommended successfully"})
}
