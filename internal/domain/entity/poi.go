// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the coordinate in orb's [lng, lat] order.
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// IsValid reports whether the coordinate is finite and inside Earth bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 &&
		c.Lng >= -180 && c.Lng <= 180
}

// PointOfInterest is a single visitable place handed to the planner.
//
// TravelTimeToNext, Importance and TimeRequired are annotations written by
// the planner: TravelTimeToNext during tour construction (nil on the last
// tour position), Importance and TimeRequired during day partitioning.
// Day balancing clears TravelTimeToNext on a POI whose following stop in the
// same day is no longer its tour successor.
type PointOfInterest struct {
	ID             string      // Unique within one planning request
	Name           string      // Display name, also matched against category keywords
	Location       *Coordinate // Nil when the upstream source had no usable position
	VisitDuration  float64     // Hours spent on site, > 0
	Rating         float64     // 0.0 - 5.0
	RelevanceScore *float64    // Precomputed relevance, overrides keyword scoring when set
	Description    string

	TravelTimeToNext *float64 // Hours to the next POI of the tour
	Importance       float64  // 0.7*relevance + 0.3*rating
	TimeRequired     float64  // VisitDuration + TravelTimeToNext
}

// Clone returns a copy that shares no pointers with p.
func (p *PointOfInterest) Clone() *PointOfInterest {
	out := *p
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	if p.RelevanceScore != nil {
		score := *p.RelevanceScore
		out.RelevanceScore = &score
	}
	if p.TravelTimeToNext != nil {
		travel := *p.TravelTimeToNext
		out.TravelTimeToNext = &travel
	}

	return &out
}

// TravelHours returns TravelTimeToNext or zero when it is unset.
func (p *PointOfInterest) TravelHours() float64 {
	if p.TravelTimeToNext == nil {
		return 0
	}

	return *p.TravelTimeToNext
}
