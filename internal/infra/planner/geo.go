// Package planner turns a materialized list of points of interest into a
// day-by-day itinerary: a greedy multi-criteria tour partitioned into day
// buckets under a time budget.
package planner

import (
	"math"

	"tripplanner/internal/domain/entity"

	"github.com/paulmach/orb"
)

const (
	// DefaultSpeedKmh is the assumed average city travel speed.
	DefaultSpeedKmh = 30.0

	// DefaultFallbackDistanceKm replaces the distance between POIs whose coordinates are unusable.
	DefaultFallbackDistanceKm = 1.0

	earthRadiusKm = 6371.0
)

// GeoMetrics computes great-circle distances and derived travel times.
type GeoMetrics struct {
	speedKmh           float64
	fallbackDistanceKm float64
}

// NewGeoMetrics creates GeoMetrics; non-positive arguments select the defaults.
func NewGeoMetrics(speedKmh, fallbackDistanceKm float64) GeoMetrics {
	if speedKmh <= 0 || math.IsNaN(speedKmh) || math.IsInf(speedKmh, 0) {
		speedKmh = DefaultSpeedKmh
	}
	if fallbackDistanceKm <= 0 || math.IsNaN(fallbackDistanceKm) || math.IsInf(fallbackDistanceKm, 0) {
		fallbackDistanceKm = DefaultFallbackDistanceKm
	}

	return GeoMetrics{
		speedKmh:           speedKmh,
		fallbackDistanceKm: fallbackDistanceKm,
	}
}

// SpeedKmh returns the speed used for travel time estimation.
func (g GeoMetrics) SpeedKmh() float64 {
	return g.speedKmh
}

// DistanceKm returns the haversine distance between a and b. A missing or
// invalid coordinate on either side yields the fallback distance instead of
// an error, so dirty upstream data never aborts planning.
func (g GeoMetrics) DistanceKm(a, b *entity.Coordinate) float64 {
	if a == nil || b == nil || !a.IsValid() || !b.IsValid() {
		return g.fallbackDistanceKm
	}

	return haversineKm(a.Point(), b.Point())
}

// TravelTimeHours is DistanceKm divided by the configured speed.
func (g GeoMetrics) TravelTimeHours(a, b *entity.Coordinate) float64 {
	return g.DistanceKm(a, b) / g.speedKmh
}

// haversineKm calculates the great circle distance between two points in kilometers
func haversineKm(p1, p2 orb.Point) float64 {
	lat1Rad := p1.Lat() * math.Pi / 180
	lng1Rad := p1.Lon() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	lng2Rad := p2.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	// Rounding can push a marginally above 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
