package planner

import "tripplanner/internal/domain/entity"

func poi(id, name, description string, lat, lng, visit, rating float64) *entity.PointOfInterest {
	return &entity.PointOfInterest{
		ID:            id,
		Name:          name,
		Description:   description,
		Location:      &entity.Coordinate{Lat: lat, Lng: lng},
		VisitDuration: visit,
		Rating:        rating,
	}
}

// jaipurPOIs returns five POIs around Jaipur whose relevance and rating
// rankings diverge between the Historical and Romantic profiles.
func jaipurPOIs() []*entity.PointOfInterest {
	return []*entity.PointOfInterest{
		poi("amber", "Amber Fort", "Hilltop fort palace", 26.9855, 75.8513, 3, 4.6),
		poi("hawa", "Hawa Mahal", "Palace of winds", 26.9239, 75.8267, 1.5, 4.4),
		poi("city", "City Palace", "Royal palace and museum", 26.9258, 75.8237, 2, 4.5),
		poi("jal", "Jal Mahal", "Palace in the middle of Man Sagar lake, sunset view", 26.9535, 75.8462, 1, 4.8),
		poi("chokhi", "Chokhi Dhani", "Ethnic village resort", 26.7667, 75.8360, 3.5, 4.9),
	}
}

func ids(pois []*entity.PointOfInterest) []string {
	out := make([]string, 0, len(pois))
	for _, p := range pois {
		out = append(out, p.ID)
	}

	return out
}
