package entity

import "strings"

// TripCategory selects the weight profile and keyword table used for scoring.
type TripCategory string

const (
	TripCategoryHistorical TripCategory = "Historical"
	TripCategoryAdventure  TripCategory = "Adventure"
	TripCategoryReligious  TripCategory = "Religious"
	TripCategoryNature     TripCategory = "Nature"
	TripCategoryRomantic   TripCategory = "Romantic"
)

// DefaultTripCategory is used when a caller sends an unrecognized category.
const DefaultTripCategory = TripCategoryHistorical

// TripCategories lists the closed set of supported categories.
func TripCategories() []TripCategory {
	return []TripCategory{
		TripCategoryHistorical,
		TripCategoryAdventure,
		TripCategoryReligious,
		TripCategoryNature,
		TripCategoryRomantic,
	}
}

// String returns the string representation of the TripCategory.
func (c TripCategory) String() string {
	return string(c)
}

// IsValid checks if the TripCategory is a member of the closed set.
func (c TripCategory) IsValid() bool {
	switch c {
	case TripCategoryHistorical, TripCategoryAdventure, TripCategoryReligious,
		TripCategoryNature, TripCategoryRomantic:
		return true
	default:
		return false
	}
}

// ParseTripCategory matches raw case-insensitively. Unknown values resolve to
// DefaultTripCategory and ok is false.
func ParseTripCategory(raw string) (category TripCategory, ok bool) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range TripCategories() {
		if strings.EqualFold(trimmed, string(candidate)) {
			return candidate, true
		}
	}

	return DefaultTripCategory, false
}
