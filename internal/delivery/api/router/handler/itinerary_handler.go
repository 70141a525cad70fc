package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"tripplanner/internal/delivery/api/response"
	"tripplanner/internal/delivery/presenter"
	"tripplanner/internal/errors"
	"tripplanner/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatGeoJSON = "geojson"

// ItineraryHandlerParams holds dependencies for ItineraryHandler, injected by Fx.
type ItineraryHandlerParams struct {
	fx.In

	ItineraryUC usecase.ItineraryUsecase
	Logger      *slog.Logger
}

// ItineraryHandler holds dependencies for itinerary handlers
type ItineraryHandler struct {
	itineraryUC usecase.ItineraryUsecase
	logger      *slog.Logger
}

// NewItineraryHandler is the constructor for ItineraryHandler
func NewItineraryHandler(params ItineraryHandlerParams) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: params.ItineraryUC,
		logger:      params.Logger,
	}
}

// PlanItinerary handles itinerary planning. ?format=geojson returns a
// GeoJSON FeatureCollection instead of the JSON envelope.
func (h *ItineraryHandler) PlanItinerary(c echo.Context) error {
	var req PlanItineraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid itinerary request body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.itineraryUC.Plan(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if strings.EqualFold(c.QueryParam("format"), formatGeoJSON) {
		return response.GeoJSON(c, http.StatusOK, presenter.NewFeatureCollection(result))
	}

	return response.Success(c, http.StatusOK, presenter.NewItinerary(result))
}

// ListStrategies handles listing the supported tour strategies
func (h *ItineraryHandler) ListStrategies(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.itineraryUC.Strategies())
}
