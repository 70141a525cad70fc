package planner

import (
	"math"
	"testing"

	"tripplanner/internal/domain/entity"
	domainerrors "tripplanner/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScoring(pois []*entity.PointOfInterest, category entity.TripCategory) scoring {
	profiles := DefaultProfiles()
	relevance := make(map[string]float64, len(pois))
	for _, p := range pois {
		relevance[p.ID] = profiles.Relevance(p, category)
	}

	return scoring{weights: profiles.Weights(category), relevance: relevance}
}

func mustTour(t *testing.T, g *Graph, start string, strategy Strategy, sc scoring) []*entity.PointOfInterest {
	t.Helper()

	tour, err := constructTour(g, start, strategy, sc)
	require.NoError(t, err)

	return tour
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		raw  string
		want Strategy
	}{
		{raw: "", want: StrategyGreedy},
		{raw: "greedy", want: StrategyGreedy},
		{raw: " Shortest-Path ", want: StrategyShortestPath},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStrategy(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseStrategy("simulated-annealing")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownStrategy)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestStrategy_Method(t *testing.T) {
	assert.Equal(t, MethodGreedy, StrategyGreedy.Method())
	assert.Equal(t, MethodShortestPath, StrategyShortestPath.Method())
}

func TestPickStart(t *testing.T) {
	pois := jaipurPOIs()
	g := BuildGraph(pois, NewGeoMetrics(0, 0))

	assert.Equal(t, "amber", pickStart(g, newScoring(pois, entity.TripCategoryHistorical)))
	assert.Equal(t, "jal", pickStart(g, newScoring(pois, entity.TripCategoryRomantic)))
}

func TestPickStart_FirstMaxWins(t *testing.T) {
	pois := []*entity.PointOfInterest{
		poi("x", "Plain", "", 0, 0, 1, 4),
		poi("y", "Plain", "", 0, 1, 1, 4),
	}
	g := BuildGraph(pois, NewGeoMetrics(0, 0))

	assert.Equal(t, "x", pickStart(g, newScoring(pois, entity.TripCategoryNature)))
}

func TestConstructTour_Greedy(t *testing.T) {
	pois := jaipurPOIs()
	g := BuildGraph(pois, NewGeoMetrics(0, 0))

	tour := mustTour(t, g, "amber", StrategyGreedy, newScoring(pois, entity.TripCategoryHistorical))

	assert.Equal(t, []string{"amber", "city", "hawa", "jal", "chokhi"}, ids(tour))
	for i, p := range tour {
		if i == len(tour)-1 {
			assert.Nil(t, p.TravelTimeToNext)
			continue
		}
		require.NotNil(t, p.TravelTimeToNext)
		edge, ok := g.Edge(p.ID, tour[i+1].ID)
		require.True(t, ok)
		assert.Equal(t, edge.TravelTimeHours, *p.TravelTimeToNext)
	}
}

func TestConstructTour_HamiltonianCoverage(t *testing.T) {
	pois := []*entity.PointOfInterest{
		poi("p1", "Fort One", "", 26.90, 75.80, 1, 3),
		poi("p2", "Lake Two", "", 26.95, 75.85, 1, 4),
		{ID: "p3", Name: "Nowhere", VisitDuration: 1, Rating: 5},
		poi("p4", "Temple Four", "holy shrine", 27.10, 75.70, 2, 2),
		poi("p5", "Park Five", "", 26.80, 75.90, 1, 1),
		poi("p6", "Bad Coordinates", "", 120, 75.90, 1, 4),
		poi("p7", "Museum Seven", "ancient", 26.91, 75.81, 1.5, 4.2),
	}

	for _, strategy := range Strategies() {
		for _, category := range entity.TripCategories() {
			t.Run(string(strategy)+"/"+string(category), func(t *testing.T) {
				fresh := make([]*entity.PointOfInterest, 0, len(pois))
				for _, p := range pois {
					fresh = append(fresh, p.Clone())
				}
				g := BuildGraph(fresh, NewGeoMetrics(0, 0))
				sc := newScoring(fresh, category)

				tour := mustTour(t, g, pickStart(g, sc), strategy, sc)

				assert.ElementsMatch(t, ids(pois), ids(tour))
			})
		}
	}
}

func TestConstructTour_SinglePOI(t *testing.T) {
	pois := []*entity.PointOfInterest{poi("solo", "Solo", "", 0, 0, 1, 1)}
	g := BuildGraph(pois, NewGeoMetrics(0, 0))

	tour := mustTour(t, g, "solo", StrategyGreedy, newScoring(pois, entity.TripCategoryHistorical))

	require.Len(t, tour, 1)
	assert.Nil(t, tour[0].TravelTimeToNext)
}

func TestConstructTour_UnknownStart(t *testing.T) {
	g := BuildGraph(jaipurPOIs(), NewGeoMetrics(0, 0))

	tour, err := constructTour(g, "missing", StrategyGreedy, scoring{})
	require.Error(t, err)
	assert.Nil(t, tour)
}

func TestConstructTour_StalledWalkIsAnError(t *testing.T) {
	pois := jaipurPOIs()
	g := BuildGraph(pois, NewGeoMetrics(0, 0))
	sc := newScoring(pois, entity.TripCategoryHistorical)
	// A non-finite score leaves the greedy step without a candidate.
	sc.relevance["jal"] = math.Inf(-1)

	tour, err := constructTour(g, "amber", StrategyGreedy, sc)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tour stalled")
	assert.Nil(t, tour)
}
