// Package presenter shapes planned itineraries for outer surfaces.
package presenter

import (
	"tripplanner/internal/domain/entity"
	"tripplanner/internal/usecase"
)

// Location is a WGS84 position.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is a planned POI. TravelTimeToNext is the travel time to the following
// stop of the same day; it is absent on the last stop of a day and when day
// balancing separated the stop from its tour successor.
type Stop struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Location         *Location `json:"location,omitempty"`
	VisitDuration    float64   `json:"visitDuration"`
	Rating           float64   `json:"rating"`
	RelevanceScore   *float64  `json:"relevanceScore,omitempty"`
	Description      string    `json:"description,omitempty"`
	TravelTimeToNext *float64  `json:"travelTimeToNext,omitempty"`
	Importance       float64   `json:"importance"`
	TimeRequired     float64   `json:"timeRequired"`
}

// Metadata describes how the itinerary was produced
type Metadata struct {
	TripCategory       string `json:"tripCategory"`
	StartingPoint      string `json:"startingPoint"`
	TotalPOIs          int    `json:"totalPOIs"`
	OptimizationMethod string `json:"optimizationMethod"`
}

// Itinerary is the JSON rendering of a planned itinerary
type Itinerary struct {
	ItineraryID      string   `json:"itineraryId"`
	DailyItineraries [][]Stop `json:"dailyItineraries"`
	Metadata         Metadata `json:"metadata"`
	CategoryFallback bool     `json:"categoryFallback"`
}

// NewItinerary renders a planning result.
func NewItinerary(result *usecase.PlanItineraryResult) *Itinerary {
	itinerary := result.Itinerary

	days := make([][]Stop, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		stops := make([]Stop, 0, len(day.POIs))
		for i, poi := range day.POIs {
			stops = append(stops, newStop(poi, i == len(day.POIs)-1))
		}
		days = append(days, stops)
	}

	return &Itinerary{
		ItineraryID:      result.ItineraryID,
		DailyItineraries: days,
		Metadata:         newMetadata(itinerary.Metadata),
		CategoryFallback: result.CategoryFallback,
	}
}

func newMetadata(m entity.ItineraryMetadata) Metadata {
	return Metadata{
		TripCategory:       m.TripCategory.String(),
		StartingPoint:      m.StartingPoint,
		TotalPOIs:          m.TotalPOIs,
		OptimizationMethod: m.OptimizationMethod,
	}
}

func newStop(poi *entity.PointOfInterest, lastOfDay bool) Stop {
	out := Stop{
		ID:             poi.ID,
		Name:           poi.Name,
		VisitDuration:  poi.VisitDuration,
		Rating:         poi.Rating,
		RelevanceScore: poi.RelevanceScore,
		Description:    poi.Description,
		Importance:     poi.Importance,
		TimeRequired:   poi.TimeRequired,
	}
	if poi.Location != nil {
		out.Location = &Location{Lat: poi.Location.Lat, Lng: poi.Location.Lng}
	}
	if !lastOfDay {
		out.TravelTimeToNext = poi.TravelTimeToNext
	}

	return out
}
