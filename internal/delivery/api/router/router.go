// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coffeeshop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CoffeeHandler *handler.CoffeeHandler
	EventHandler  *handler.EventHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	coffeeHandler *handler.CoffeeHandler
	eventHandler  *handler.EventHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		coffeeHandler: params.CoffeeHandler,
		eventHandler:  params.EventHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	coffeesGroup := apiV1.Group("/coffees")
	{
		coffeesGroup.GET("", r.coffeeHandler.ListCoffees)
		coffeesGroup.POST("", r.coffeeHandler.CreateCoffee)
		coffeesGroup.GET("/:id", r.coffeeHandler.GetCoffee)
		coffeesGroup.PATCH("/:id", r.coffeeHandler.UpdateCoffee)
		coffeesGroup.DELETE("/:id", r.coffeeHandler.RemoveCoffee)
		coffeesGroup.POST("/:id/recommend", r.coffeeHandler.RecommendCoffee)
	}

	// Audit log, read-only
	apiV1.GET("/events", r.eventHandler.ListEvents)
}
