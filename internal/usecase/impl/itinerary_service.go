package impl

import (
	"context"
	"log/slog"
	"time"

	"tripplanner/config"
	deliveryContext "tripplanner/internal/delivery/context"
	"tripplanner/internal/domain/entity"
	domainerrors "tripplanner/internal/domain/errors"
	"tripplanner/internal/domain/service"
	"tripplanner/internal/errors"
	"tripplanner/internal/infra/planner"
	"tripplanner/internal/usecase"

	"github.com/google/uuid"
)

type itineraryService struct {
	optimizer *planner.Optimizer
	publisher service.EventPublisher
	logger    *slog.Logger
	maxDays   int
}

// NewItineraryService creates a new itinerary service instance
func NewItineraryService(
	optimizer *planner.Optimizer,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ItineraryUsecase {
	maxDays := 0
	if cfg != nil && cfg.Optimizer != nil {
		maxDays = cfg.Optimizer.MaxDays
	}

	return &itineraryService{
		optimizer: optimizer,
		publisher: publisher,
		logger:    logger,
		maxDays:   maxDays,
	}
}

// Plan orders the POIs into a tour and splits it into days
func (s *itineraryService) Plan(ctx context.Context, input *usecase.PlanItineraryInput) (*usecase.PlanItineraryResult, error) {
	logger := deliveryContext.GetLoggerOrDefault(ctx, s.logger)

	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidArgument.WithDetails("missing planning input"))
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "itinerary planning canceled")
	}
	if s.maxDays > 0 && input.Days > s.maxDays {
		return nil, errors.WithStack(domainerrors.ErrInvalidDays.WithDetailsf("days=%d, at most %d", input.Days, s.maxDays))
	}

	category, ok := entity.ParseTripCategory(input.TripCategory)
	if !ok {
		logger.Warn("Unknown trip category, falling back to default",
			slog.String("requested", input.TripCategory),
			slog.String("fallback", category.String()),
		)
	}

	started := time.Now()
	itinerary, err := s.optimizer.Optimize(planner.Request{
		POIs:     input.POIs,
		Days:     input.Days,
		Category: category,
		Strategy: planner.Strategy(input.Strategy),
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "itinerary planning canceled")
	}

	result := &usecase.PlanItineraryResult{
		ItineraryID:      uuid.New().String(),
		Itinerary:        itinerary,
		CategoryFallback: !ok,
	}

	logger.Info("Itinerary planned",
		slog.String("itinerary_id", result.ItineraryID),
		slog.String("trip_category", category.String()),
		slog.String("method", itinerary.Metadata.OptimizationMethod),
		slog.Int("total_pois", itinerary.Metadata.TotalPOIs),
		slog.Int("days", len(itinerary.Days)),
		slog.Duration("elapsed", time.Since(started)),
	)

	s.publish(ctx, logger, result)

	return result, nil
}

// publish announces the itinerary; failures are logged and never fail the request.
func (s *itineraryService) publish(ctx context.Context, logger *slog.Logger, result *usecase.PlanItineraryResult) {
	if s.publisher == nil {
		return
	}

	event := newItineraryEvent(deliveryContext.GetRequestIDFromContext(ctx), result)
	if err := s.publisher.PublishItineraryEvent(ctx, event); err != nil {
		logger.Error("Failed to publish itinerary event",
			slog.String("itinerary_id", result.ItineraryID),
			slog.Any("error", err),
		)
	}
}

func newItineraryEvent(requestID string, result *usecase.PlanItineraryResult) *service.ItineraryGeneratedEvent {
	itinerary := result.Itinerary
	days := make([]service.ItineraryDaySummary, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		poiIDs := make([]string, 0, len(day.POIs))
		for _, poi := range day.POIs {
			poiIDs = append(poiIDs, poi.ID)
		}
		days = append(days, service.ItineraryDaySummary{
			Day:        day.Number,
			POIIDs:     poiIDs,
			TotalHours: day.TotalHours(),
		})
	}

	return &service.ItineraryGeneratedEvent{
		RequestID:          requestID,
		ItineraryID:        result.ItineraryID,
		TripCategory:       itinerary.Metadata.TripCategory.String(),
		OptimizationMethod: itinerary.Metadata.OptimizationMethod,
		StartingPoint:      itinerary.Metadata.StartingPoint,
		TotalPOIs:          itinerary.Metadata.TotalPOIs,
		Days:               days,
		GeneratedAt:        time.Now().UTC(),
	}
}

// Strategies lists the supported tour construction strategies
func (s *itineraryService) Strategies() []usecase.StrategyInfo {
	strategies := planner.Strategies()
	out := make([]usecase.StrategyInfo, 0, len(strategies))
	for _, strategy := range strategies {
		out = append(out, usecase.StrategyInfo{
			Name:      string(strategy),
			Method:    strategy.Method(),
			IsDefault: strategy == s.optimizer.DefaultStrategy(),
		})
	}

	return out
}
