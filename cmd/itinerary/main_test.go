package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tripplanner/internal/delivery/presenter"
	domainerrors "tripplanner/internal/domain/errors"
	"tripplanner/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jaipurFile = `{
  "pois": [
    {"id": "amber", "name": "Amber Fort", "description": "Hilltop fort palace", "location": {"lat": 26.9855, "lng": 75.8513}, "visitDuration": 3, "rating": 4.6},
    {"id": "hawa", "name": "Hawa Mahal", "description": "Palace of winds", "location": {"lat": 26.9239, "lng": 75.8267}, "visitDuration": 1.5, "rating": 4.4},
    {"id": "city", "name": "City Palace", "description": "Royal palace and museum", "location": {"lat": 26.9258, "lng": 75.8237}, "visitDuration": 2, "rating": 4.5},
    {"id": "jal", "name": "Jal Mahal", "description": "Palace in the middle of Man Sagar lake, sunset view", "location": {"lat": 26.9535, "lng": 75.8462}, "visitDuration": 1, "rating": 4.8},
    {"id": "chokhi", "name": "Chokhi Dhani", "description": "Ethnic village resort", "location": {"lat": 26.7667, "lng": 75.8360}, "visitDuration": 3.5, "rating": 4.9}
  ]
}`

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pois.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_OptimizeJSON(t *testing.T) {
	t.Parallel()

	path := writeInput(t, jaipurFile)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"optimize", "-input", path, "-days", "2", "-format", "json"}, &stdout, &stderr)
	require.NoError(t, err)

	var itinerary presenter.Itinerary
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &itinerary))
	assert.Len(t, itinerary.DailyItineraries, 2)
	assert.Equal(t, "Amber Fort", itinerary.Metadata.StartingPoint)
	assert.Equal(t, 5, itinerary.Metadata.TotalPOIs)
	assert.NotEmpty(t, itinerary.ItineraryID)
	assert.Contains(t, stderr.String(), "Itinerary planned")
}

func TestRun_OptimizeTextFromArray(t *testing.T) {
	t.Parallel()

	path := writeInput(t, `[
	  {"id": "a", "name": "Old Fort", "location": {"lat": 28.6, "lng": 77.2}, "visitDuration": 2, "rating": 4},
	  {"id": "b", "name": "Lodhi Garden", "location": {"lat": 28.59, "lng": 77.22}, "visitDuration": 1, "rating": 4.5}
	]`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"optimize", "-input", path, "-days", "3", "-category", "Nature"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Category: Nature\n")
	assert.Contains(t, out, "Method: multi-criteria-greedy")
	assert.Contains(t, out, "Day 1 (")
	assert.Contains(t, out, "Day 3 (")
	assert.Contains(t, out, "free day")
}

func TestRun_OptimizeGeoJSON(t *testing.T) {
	t.Parallel()

	path := writeInput(t, jaipurFile)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"optimize", "-input", path, "-days", "1", "-format", "geojson", "-strategy", "shortest-path"}, &stdout, &stderr)
	require.NoError(t, err)

	var fc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc["type"])
	features, ok := fc["features"].([]any)
	require.True(t, ok)
	// five stops plus one route
	assert.Len(t, features, 6)
}

func TestRun_CategoryFallbackIsReported(t *testing.T) {
	t.Parallel()

	path := writeInput(t, jaipurFile)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"optimize", "-input", path, "-category", "Culinary"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Category: Historical (fallback)")
	assert.Contains(t, stderr.String(), "Unknown trip category")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	path := writeInput(t, jaipurFile)
	broken := writeInput(t, `{"pois": [`)

	tests := []struct {
		name    string
		args    []string
		invalid bool
	}{
		{name: "no subcommand", args: nil},
		{name: "unknown subcommand", args: []string{"explore"}},
		{name: "missing input", args: []string{"optimize"}},
		{name: "missing file", args: []string{"optimize", "-input", filepath.Join(t.TempDir(), "nope.json")}},
		{name: "broken json", args: []string{"optimize", "-input", broken}},
		{name: "unknown format", args: []string{"optimize", "-input", path, "-format", "xml"}},
		{name: "zero days", args: []string{"optimize", "-input", path, "-days", "0"}, invalid: true},
		{name: "unknown strategy", args: []string{"optimize", "-input", path, "-strategy", "random"}, invalid: true},
		{name: "unknown profiles format", args: []string{"profiles", "-format", "yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, domainerrors.ErrInvalidArgument))
		})
	}
}

func TestRun_CanceledContext(t *testing.T) {
	t.Parallel()

	path := writeInput(t, jaipurFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"optimize", "-input", path}, &stdout, &stderr)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}

func TestRun_Profiles(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"profiles"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Historical\n  weights: travelTime=0.4 relevance=0.5 rating=0.1\n")
	assert.Contains(t, stdout.String(), "fallback\n  weights: travelTime=0.6 relevance=0.3 rating=0.1\n")

	stdout.Reset()
	require.NoError(t, run(context.Background(), []string{"profiles", "-format", "json"}, &stdout, &stderr))

	var payload struct {
		Profiles []profileEntry `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
	require.Len(t, payload.Profiles, 5)
	assert.Equal(t, "Romantic", payload.Profiles[4].Category)
	assert.InDelta(t, 0.3, payload.Profiles[4].Weights.Rating, 1e-9)
	assert.Contains(t, payload.Profiles[4].Keywords, "sunset")
}
