package handler

import (
	"tripplanner/internal/delivery/presenter"
	"tripplanner/internal/domain/entity"
	"tripplanner/internal/usecase"
)

// POIRequest is one candidate point of interest. Out of range coordinates
// are accepted and treated as unknown positions by the planner.
type POIRequest struct {
	ID             string              `json:"id" validate:"required,max=128"`
	Name           string              `json:"name" validate:"required,max=256"`
	Location       *presenter.Location `json:"location"`
	VisitDuration  float64             `json:"visitDuration" validate:"gt=0,lte=24"`
	Rating         float64             `json:"rating" validate:"gte=0,lte=5"`
	RelevanceScore *float64            `json:"relevanceScore" validate:"omitempty,gte=0"`
	Description    string              `json:"description" validate:"max=2048"`
}

// PlanItineraryRequest represents the request body for planning an itinerary
type PlanItineraryRequest struct {
	TripCategory string       `json:"tripCategory" validate:"required,max=64"`
	Days         int          `json:"days" validate:"gte=1"`
	Strategy     string       `json:"strategy" validate:"max=32"`
	POIs         []POIRequest `json:"pois" validate:"dive"`
}

func (r *PlanItineraryRequest) toInput() *usecase.PlanItineraryInput {
	pois := make([]*entity.PointOfInterest, 0, len(r.POIs))
	for _, p := range r.POIs {
		poi := &entity.PointOfInterest{
			ID:            p.ID,
			Name:          p.Name,
			VisitDuration: p.VisitDuration,
			Rating:        p.Rating,
			Description:   p.Description,
		}
		if p.Location != nil {
			poi.Location = &entity.Coordinate{Lat: p.Location.Lat, Lng: p.Location.Lng}
		}
		if p.RelevanceScore != nil {
			score := *p.RelevanceScore
			poi.RelevanceScore = &score
		}
		pois = append(pois, poi)
	}

	return &usecase.PlanItineraryInput{
		TripCategory: r.TripCategory,
		Days:         r.Days,
		Strategy:     r.Strategy,
		POIs:         pois,
	}
}
