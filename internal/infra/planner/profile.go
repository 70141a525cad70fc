package planner

import (
	"slices"
	"strings"

	"tripplanner/internal/domain/entity"
)

const baseRelevanceScore = 1.0

// Weights blends travel time, relevance and rating into one score. The
// three components sum to 1.
type Weights struct {
	TravelTime float64 `json:"travelTime"`
	Relevance  float64 `json:"relevance"`
	Rating     float64 `json:"rating"`
}

// FallbackWeights applies to categories missing from a profile table.
func FallbackWeights() Weights {
	return Weights{TravelTime: 0.6, Relevance: 0.3, Rating: 0.1}
}

// Profiles is the immutable per-category lookup of weights and keywords.
type Profiles struct {
	weights  map[entity.TripCategory]Weights
	keywords map[entity.TripCategory][]string
}

// NewProfiles copies the given tables into a Profiles value.
func NewProfiles(weights map[entity.TripCategory]Weights, keywords map[entity.TripCategory][]string) Profiles {
	profiles := Profiles{
		weights:  make(map[entity.TripCategory]Weights, len(weights)),
		keywords: make(map[entity.TripCategory][]string, len(keywords)),
	}
	for category, w := range weights {
		profiles.weights[category] = w
	}
	for category, words := range keywords {
		lowered := make([]string, 0, len(words))
		for _, word := range words {
			lowered = append(lowered, strings.ToLower(word))
		}
		profiles.keywords[category] = lowered
	}

	return profiles
}

// DefaultProfiles returns the built-in weight and keyword tables. The weight
// tuples are relied upon by API consumers and must not drift.
func DefaultProfiles() Profiles {
	return NewProfiles(
		map[entity.TripCategory]Weights{
			entity.TripCategoryHistorical: {TravelTime: 0.4, Relevance: 0.5, Rating: 0.1},
			entity.TripCategoryReligious:  {TravelTime: 0.3, Relevance: 0.6, Rating: 0.1},
			entity.TripCategoryNature:     {TravelTime: 0.5, Relevance: 0.3, Rating: 0.2},
			entity.TripCategoryAdventure:  {TravelTime: 0.3, Relevance: 0.5, Rating: 0.2},
			entity.TripCategoryRomantic:   {TravelTime: 0.4, Relevance: 0.3, Rating: 0.3},
		},
		map[entity.TripCategory][]string{
			entity.TripCategoryHistorical: {"historic", "fort", "palace", "museum", "monument", "heritage", "ancient", "memorial", "archaeological"},
			entity.TripCategoryReligious:  {"temple", "church", "mosque", "shrine", "cathedral", "monastery", "gurudwara", "pilgrimage", "holy"},
			entity.TripCategoryNature:     {"park", "garden", "lake", "waterfall", "forest", "hill", "valley", "beach", "wildlife", "reserve"},
			entity.TripCategoryAdventure:  {"trek", "rafting", "climbing", "safari", "zipline", "paragliding", "camping", "adventure", "diving"},
			entity.TripCategoryRomantic:   {"sunset", "lake", "garden", "view", "boat", "cruise", "romantic", "palace", "candle"},
		},
	)
}

// Weights returns the weight tuple for category, or FallbackWeights.
func (p Profiles) Weights(category entity.TripCategory) Weights {
	if w, ok := p.weights[category]; ok {
		return w
	}

	return FallbackWeights()
}

// Keywords returns the keyword table for category. Categories without a
// table use the Historical one.
func (p Profiles) Keywords(category entity.TripCategory) []string {
	if words, ok := p.keywords[category]; ok {
		return slices.Clone(words)
	}

	return slices.Clone(p.keywords[entity.TripCategoryHistorical])
}

// Score is the keyword relevance of poi for category: 1, plus 2 per keyword
// found in the name and 1 per keyword found in the description.
func (p Profiles) Score(poi *entity.PointOfInterest, category entity.TripCategory) float64 {
	name := strings.ToLower(poi.Name)
	description := strings.ToLower(poi.Description)

	score := baseRelevanceScore
	for _, keyword := range p.Keywords(category) {
		if strings.Contains(name, keyword) {
			score += 2
		}
		if strings.Contains(description, keyword) {
			score++
		}
	}

	return score
}

// Relevance returns the precomputed RelevanceScore when present, otherwise Score.
func (p Profiles) Relevance(poi *entity.PointOfInterest, category entity.TripCategory) float64 {
	if poi.RelevanceScore != nil {
		return *poi.RelevanceScore
	}

	return p.Score(poi, category)
}
