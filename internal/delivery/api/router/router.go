// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tripplanner/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ItineraryHandler *handler.ItineraryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	itineraryHandler *handler.ItineraryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		itineraryHandler: params.ItineraryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	itinerariesGroup := apiV1.Group("/itineraries")
	{
		itinerariesGroup.POST("", r.itineraryHandler.PlanItinerary)
		itinerariesGroup.GET("/strategies", r.itineraryHandler.ListStrategies)
	}
}
