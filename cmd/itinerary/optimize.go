package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"tripplanner/config"
	"tripplanner/internal/delivery/presenter"
	"tripplanner/internal/domain/entity"
	"tripplanner/internal/errors"
	logs "tripplanner/internal/infra/log"
	"tripplanner/internal/infra/planner"
	"tripplanner/internal/usecase"
	"tripplanner/internal/usecase/impl"
	"tripplanner/internal/util"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatGeoJSON = "geojson"
)

// poiFile is one entry of the input file; the shape matches the HTTP API.
type poiFile struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Location       *presenter.Location `json:"location"`
	VisitDuration  float64             `json:"visitDuration"`
	Rating         float64             `json:"rating"`
	RelevanceScore *float64            `json:"relevanceScore"`
	Description    string              `json:"description"`
}

func runOptimize(ctx context.Context, flags *optimizeFlags, stdout, stderr io.Writer) error {
	if *flags.input == "" {
		return errors.New("--input flag is required for optimize command")
	}

	format := strings.ToLower(*flags.format)
	switch format {
	case formatText, formatJSON, formatGeoJSON:
	default:
		return errors.Errorf("unknown format: %s", *flags.format)
	}

	cfg := config.Default()
	if *flags.loadConfig {
		loaded, err := config.New()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Diagnostics go to stderr so stdout stays machine readable.
	logger, err := logs.NewWithWriter(cfg, stderr)
	if err != nil {
		return err
	}

	pois, err := readPOIs(*flags.input)
	if err != nil {
		return err
	}

	optimizer, err := planner.New(planner.Params{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	itineraries := impl.NewItineraryService(optimizer, nil, cfg, logger)
	result, err := itineraries.Plan(ctx, &usecase.PlanItineraryInput{
		TripCategory: *flags.category,
		Days:         *flags.days,
		Strategy:     *flags.strategy,
		POIs:         pois,
	})
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		return writeJSON(stdout, presenter.NewItinerary(result))
	case formatGeoJSON:
		return writeJSON(stdout, presenter.NewFeatureCollection(result))
	default:
		return writeText(stdout, result)
	}
}

func readPOIs(path string) ([]*entity.PointOfInterest, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	return decodePOIs(raw)
}

// decodePOIs accepts either a bare array of POIs or an object with a "pois" array.
func decodePOIs(raw []byte) ([]*entity.PointOfInterest, error) {
	var entries []poiFile

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var wrapper struct {
			POIs []poiFile `json:"pois"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, errors.Wrap(err, "failed to decode POI file")
		}
		entries = wrapper.POIs
	} else if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to decode POI file")
	}

	pois := make([]*entity.PointOfInterest, 0, len(entries))
	for _, e := range entries {
		poi := &entity.PointOfInterest{
			ID:             e.ID,
			Name:           e.Name,
			VisitDuration:  e.VisitDuration,
			Rating:         e.Rating,
			RelevanceScore: e.RelevanceScore,
			Description:    e.Description,
		}
		if e.Location != nil {
			poi.Location = &entity.Coordinate{Lat: e.Location.Lat, Lng: e.Location.Lng}
		}
		pois = append(pois, poi)
	}

	return pois, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.Wrap(encoder.Encode(v), "failed to encode output")
}

func writeText(w io.Writer, result *usecase.PlanItineraryResult) error {
	meta := result.Itinerary.Metadata

	var b strings.Builder
	fmt.Fprintf(&b, "Itinerary %s\n", result.ItineraryID)
	fmt.Fprintf(&b, "Category: %s", meta.TripCategory)
	if result.CategoryFallback {
		b.WriteString(" (fallback)")
	}
	fmt.Fprintf(&b, "\nMethod: %s\nStart: %s\nPOIs: %d\n", meta.OptimizationMethod, meta.StartingPoint, meta.TotalPOIs)

	for _, day := range result.Itinerary.Days {
		fmt.Fprintf(&b, "\nDay %d (%s)\n", day.Number, util.FormatHours(day.TotalHours()))
		if len(day.POIs) == 0 {
			b.WriteString("  free day\n")

			continue
		}
		for i, poi := range day.POIs {
			fmt.Fprintf(&b, "  %d. %s  visit %s", i+1, poi.Name, util.FormatHours(poi.VisitDuration))
			if i < len(day.POIs)-1 && poi.TravelTimeToNext != nil {
				fmt.Fprintf(&b, "  then %s travel", util.FormatHours(*poi.TravelTimeToNext))
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return errors.Wrap(err, "failed to write output")
}
