package planner

import (
	"math"

	"tripplanner/internal/domain/entity"
	domainerrors "tripplanner/internal/domain/errors"
	"tripplanner/internal/errors"
)

// Options configures an Optimizer. Zero values select the defaults.
type Options struct {
	Metrics  GeoMetrics
	Profiles *Profiles
	Strategy Strategy
	// MaxPOIs caps the POIs accepted per call; zero disables the cap.
	MaxPOIs int
}

// Request is one optimization call.
type Request struct {
	POIs     []*entity.PointOfInterest
	Days     int
	Category entity.TripCategory
	// Strategy overrides the optimizer default when set.
	Strategy Strategy
}

// Optimizer orders POIs into a tour and splits the tour into days. It holds
// no mutable state, so one value serves concurrent calls.
type Optimizer struct {
	metrics  GeoMetrics
	profiles Profiles
	strategy Strategy
	maxPOIs  int
}

// NewOptimizer creates an Optimizer.
func NewOptimizer(opts Options) *Optimizer {
	metrics := opts.Metrics
	if metrics.speedKmh <= 0 {
		metrics = NewGeoMetrics(metrics.speedKmh, metrics.fallbackDistanceKm)
	}

	profiles := DefaultProfiles()
	if opts.Profiles != nil {
		profiles = *opts.Profiles
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyGreedy
	}

	return &Optimizer{
		metrics:  metrics,
		profiles: profiles,
		strategy: strategy,
		maxPOIs:  opts.MaxPOIs,
	}
}

// Profiles returns the weight and keyword tables in use.
func (o *Optimizer) Profiles() Profiles {
	return o.profiles
}

// DefaultStrategy returns the strategy used when a request names none.
func (o *Optimizer) DefaultStrategy() Strategy {
	return o.strategy
}

// Optimize plans an itinerary. The request POIs are copied, so callers'
// records are never annotated. An empty POI list is not an error and yields
// Days empty days.
func (o *Optimizer) Optimize(req Request) (*entity.Itinerary, error) {
	strategy, err := o.validate(req)
	if err != nil {
		return nil, err
	}

	itinerary := &entity.Itinerary{
		Metadata: entity.ItineraryMetadata{
			TripCategory:       req.Category,
			TotalPOIs:          len(req.POIs),
			OptimizationMethod: strategy.Method(),
		},
	}

	pois := make([]*entity.PointOfInterest, 0, len(req.POIs))
	relevance := make(map[string]float64, len(req.POIs))
	for _, poi := range req.POIs {
		c := poi.Clone()
		c.TravelTimeToNext = nil
		pois = append(pois, c)
		relevance[c.ID] = o.profiles.Relevance(c, req.Category)
	}

	var buckets [][]*entity.PointOfInterest
	if len(pois) == 0 {
		buckets = make([][]*entity.PointOfInterest, req.Days)
	} else {
		sc := scoring{weights: o.profiles.Weights(req.Category), relevance: relevance}
		graph := BuildGraph(pois, o.metrics)
		start := pickStart(graph, sc)
		tour, err := constructTour(graph, start, strategy, sc)
		if err != nil {
			return nil, err
		}

		tourIndex := make(map[string]int, len(tour))
		for i, poi := range tour {
			tourIndex[poi.ID] = i
		}

		buckets = balanceDays(partitionDays(tour, req.Days, relevance), req.Days, tourIndex)
		detachMovedLegs(buckets, tourIndex)
		itinerary.Metadata.StartingPoint = graph.Nodes[start].Name
	}

	itinerary.Days = make([]entity.Day, 0, len(buckets))
	for i, bucket := range buckets {
		if bucket == nil {
			bucket = []*entity.PointOfInterest{}
		}
		itinerary.Days = append(itinerary.Days, entity.Day{Number: i + 1, POIs: bucket})
	}

	return itinerary, nil
}

func (o *Optimizer) validate(req Request) (Strategy, error) {
	if req.Days < 1 {
		return "", errors.WithStack(domainerrors.ErrInvalidDays.WithDetailsf("days=%d", req.Days))
	}
	if !req.Category.IsValid() {
		return "", errors.WithStack(domainerrors.ErrInvalidCategory.WithDetailsf("category %q", req.Category))
	}

	strategy := o.strategy
	if req.Strategy != "" {
		parsed, err := ParseStrategy(string(req.Strategy))
		if err != nil {
			return "", err
		}
		strategy = parsed
	}

	if o.maxPOIs > 0 && len(req.POIs) > o.maxPOIs {
		return "", errors.WithStack(domainerrors.ErrTooManyPOIs.WithDetailsf("%d POIs, at most %d", len(req.POIs), o.maxPOIs))
	}

	seen := make(map[string]struct{}, len(req.POIs))
	for i, poi := range req.POIs {
		switch {
		case poi == nil:
			return "", errors.WithStack(domainerrors.ErrInvalidPOI.WithDetailsf("poi[%d] is nil", i))
		case poi.ID == "":
			return "", errors.WithStack(domainerrors.ErrInvalidPOI.WithDetailsf("poi[%d] has no id", i))
		case math.IsNaN(poi.VisitDuration) || math.IsInf(poi.VisitDuration, 0) || poi.VisitDuration <= 0:
			return "", errors.WithStack(domainerrors.ErrInvalidVisitDuration.WithDetailsf("poi %q visitDuration=%v", poi.ID, poi.VisitDuration))
		case math.IsNaN(poi.Rating) || poi.Rating < 0 || poi.Rating > 5:
			return "", errors.WithStack(domainerrors.ErrInvalidRating.WithDetailsf("poi %q rating=%v", poi.ID, poi.Rating))
		case poi.RelevanceScore != nil && !validRelevance(*poi.RelevanceScore):
			return "", errors.WithStack(domainerrors.ErrInvalidRelevance.WithDetailsf("poi %q relevanceScore=%v", poi.ID, *poi.RelevanceScore))
		}
		if _, dup := seen[poi.ID]; dup {
			return "", errors.WithStack(domainerrors.ErrDuplicatePOI.WithDetailsf("poi %q", poi.ID))
		}
		seen[poi.ID] = struct{}{}
	}

	return strategy, nil
}

func validRelevance(score float64) bool {
	return !math.IsNaN(score) && !math.IsInf(score, 0) && score >= 0
}
