package entity

// Day is one bucket of the itinerary. An empty Day is a free day.
type Day struct {
	Number int // 1-based
	POIs   []*PointOfInterest
}

// TotalHours sums TimeRequired over the day's POIs.
func (d Day) TotalHours() float64 {
	total := 0.0
	for _, poi := range d.POIs {
		total += poi.TimeRequired
	}

	return total
}

// ItineraryMetadata describes how an itinerary was produced.
type ItineraryMetadata struct {
	TripCategory       TripCategory
	StartingPoint      string // Name of the first POI of the tour, empty when there were no POIs
	TotalPOIs          int
	OptimizationMethod string
}

// Itinerary is the planner output: exactly the requested number of days.
type Itinerary struct {
	Days     []Day
	Metadata ItineraryMetadata
}

// POIs returns every POI in day order.
func (it *Itinerary) POIs() []*PointOfInterest {
	var out []*PointOfInterest
	for _, day := range it.Days {
		out = append(out, day.POIs...)
	}

	return out
}
