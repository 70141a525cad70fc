package service

import (
	"context"
	"time"
)

// ItineraryDaySummary is the per-day part of an ItineraryGeneratedEvent
type ItineraryDaySummary struct {
	Day        int      `json:"day"`
	POIIDs     []string `json:"poi_ids"`
	TotalHours float64  `json:"total_hours"`
}

// ItineraryGeneratedEvent announces a freshly planned itinerary to downstream consumers
type ItineraryGeneratedEvent struct {
	RequestID          string                `json:"request_id,omitempty"` // For distributed tracing
	ItineraryID        string                `json:"itinerary_id"`
	TripCategory       string                `json:"trip_category"`
	OptimizationMethod string                `json:"optimization_method"`
	StartingPoint      string                `json:"starting_point,omitempty"`
	TotalPOIs          int                   `json:"total_pois"`
	Days               []ItineraryDaySummary `json:"days"`
	GeneratedAt        time.Time             `json:"generated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishItineraryEvent publishes an itinerary event for async consumers
	PublishItineraryEvent(ctx context.Context, event *ItineraryGeneratedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
