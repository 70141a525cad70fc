package planner

import (
	"math"

	"tripplanner/internal/domain/entity"
)

const (
	relevanceImportanceWeight = 0.7
	ratingImportanceWeight    = 0.3
	maxImportanceFactor       = 1.3
)

// importance ranks a POI within its day; higher values stretch the day budget.
func importance(relevance, rating float64) float64 {
	return relevanceImportanceWeight*relevance + ratingImportanceWeight*rating
}

// stopHours is the time a tour stop consumes: the visit plus the leg to the next stop.
func stopHours(poi *entity.PointOfInterest) float64 {
	return poi.VisitDuration + poi.TravelHours()
}

func totalHours(tour []*entity.PointOfInterest) float64 {
	total := 0.0
	for _, poi := range tour {
		total += stopHours(poi)
	}

	return total
}

// partitionDays splits the tour into consecutive day buckets around an
// average per-day budget. A bucket closes when the next POI would push it
// past the budget stretched by that POI's importance factor. The number of
// buckets produced is not yet reconciled with days.
func partitionDays(tour []*entity.PointOfInterest, days int, relevance map[string]float64) [][]*entity.PointOfInterest {
	if len(tour) == 0 {
		return make([][]*entity.PointOfInterest, days)
	}

	avgPerDay := totalHours(tour) / float64(days)

	var (
		buckets     [][]*entity.PointOfInterest
		current     []*entity.PointOfInterest
		currentTime float64
	)
	for _, poi := range tour {
		poi.Importance = importance(relevance[poi.ID], poi.Rating)
		poi.TimeRequired = stopHours(poi)

		factor := math.Min(maxImportanceFactor, 1+poi.Importance/10)
		if len(current) > 0 && currentTime+poi.TimeRequired > avgPerDay*factor {
			buckets = append(buckets, current)
			current = nil
			currentTime = 0
		}
		current = append(current, poi)
		currentTime += poi.TimeRequired
	}

	return append(buckets, current)
}
