package planner

import (
	"testing"

	"tripplanner/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_Empty(t *testing.T) {
	g := BuildGraph(nil, NewGeoMetrics(0, 0))

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Adjacency)
}

func TestBuildGraph_CompleteAndSymmetric(t *testing.T) {
	pois := jaipurPOIs()
	g := BuildGraph(pois, NewGeoMetrics(0, 0))

	require.Equal(t, len(pois), g.Len())
	assert.Equal(t, ids(pois), g.Order)

	for _, from := range g.Order {
		edges := g.Adjacency[from]
		require.Len(t, edges, len(pois)-1)

		var targets []string
		for _, edge := range edges {
			assert.Equal(t, from, edge.From)
			assert.NotEqual(t, from, edge.To)
			targets = append(targets, edge.To)

			back, ok := g.Edge(edge.To, from)
			require.True(t, ok)
			assert.Equal(t, edge.DistanceKm, back.DistanceKm)
			assert.Equal(t, edge.TravelTimeHours, back.TravelTimeHours)
		}

		// Adjacency follows input order.
		var want []string
		for _, id := range g.Order {
			if id != from {
				want = append(want, id)
			}
		}
		assert.Equal(t, want, targets)
	}
}

func TestBuildGraph_DegradedCoordinates(t *testing.T) {
	pois := []*entity.PointOfInterest{
		poi("a", "A", "", 26.9, 75.8, 1, 4),
		{ID: "b", Name: "B", VisitDuration: 1, Rating: 4},
	}

	g := BuildGraph(pois, NewGeoMetrics(0, 0))

	edge, ok := g.Edge("a", "b")
	require.True(t, ok)
	assert.Equal(t, DefaultFallbackDistanceKm, edge.DistanceKm)
	assert.InDelta(t, 1.0/30, edge.TravelTimeHours, 1e-12)

	_, ok = g.Edge("a", "missing")
	assert.False(t, ok)
}
