package usecase

import (
	"context"

	"tripplanner/internal/domain/entity"
)

// PlanItineraryInput carries one planning request from a delivery layer
type PlanItineraryInput struct {
	// TripCategory is matched case-insensitively; unknown values fall back to Historical
	TripCategory string
	Days         int
	// Strategy is optional; empty selects the configured default
	Strategy string
	POIs     []*entity.PointOfInterest
}

// PlanItineraryResult is the planned itinerary plus how the request was interpreted
type PlanItineraryResult struct {
	ItineraryID string
	Itinerary   *entity.Itinerary
	// CategoryFallback is true when TripCategory was not recognized
	CategoryFallback bool
}

// StrategyInfo describes a tour construction strategy
type StrategyInfo struct {
	Name      string `json:"name"`
	Method    string `json:"method"`
	IsDefault bool   `json:"isDefault"`
}

// ItineraryUsecase defines the interface for itinerary planning use cases
type ItineraryUsecase interface {
	// Plan orders the POIs into a tour and splits it into the requested number of days
	Plan(ctx context.Context, input *PlanItineraryInput) (*PlanItineraryResult, error)

	// Strategies lists the supported tour construction strategies
	Strategies() []StrategyInfo
}
