package main

import (
	"fmt"
	"io"
	"strings"

	"tripplanner/internal/domain/entity"
	"tripplanner/internal/errors"
	"tripplanner/internal/infra/planner"
)

type profileEntry struct {
	Category string          `json:"category"`
	Weights  planner.Weights `json:"weights"`
	Keywords []string        `json:"keywords"`
}

func runProfiles(format string, stdout io.Writer) error {
	profiles := planner.DefaultProfiles()

	entries := make([]profileEntry, 0, len(entity.TripCategories()))
	for _, category := range entity.TripCategories() {
		entries = append(entries, profileEntry{
			Category: category.String(),
			Weights:  profiles.Weights(category),
			Keywords: profiles.Keywords(category),
		})
	}

	switch strings.ToLower(format) {
	case formatJSON:
		return writeJSON(stdout, map[string]any{
			"profiles": entries,
			"fallback": planner.FallbackWeights(),
		})
	case formatText:
	default:
		return errors.Errorf("unknown format: %s", format)
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s\n  weights: travelTime=%.1f relevance=%.1f rating=%.1f\n  keywords: %s\n",
			e.Category, e.Weights.TravelTime, e.Weights.Relevance, e.Weights.Rating, strings.Join(e.Keywords, ", "))
	}
	fallback := planner.FallbackWeights()
	fmt.Fprintf(&b, "fallback\n  weights: travelTime=%.1f relevance=%.1f rating=%.1f\n",
		fallback.TravelTime, fallback.Relevance, fallback.Rating)

	_, err := io.WriteString(stdout, b.String())

	return errors.Wrap(err, "failed to write output")
}
