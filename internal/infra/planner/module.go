package planner

import (
	"log/slog"

	"tripplanner/config"

	"go.uber.org/fx"
)

// Params defines the parameters required for the optimizer
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates an Optimizer from the optimizer section of the configuration.
func New(params Params) (*Optimizer, error) {
	opt := params.Config.Optimizer
	if opt == nil {
		opt = config.Default().Optimizer
	}

	strategy, err := ParseStrategy(opt.Strategy)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Itinerary optimizer initialized",
		slog.Float64("average_speed_kmh", opt.AverageSpeedKmh),
		slog.Float64("fallback_distance_km", opt.FallbackDistanceKm),
		slog.String("strategy", string(strategy)),
		slog.Int("max_pois", opt.MaxPOIs),
	)

	return NewOptimizer(Options{
		Metrics:  NewGeoMetrics(opt.AverageSpeedKmh, opt.FallbackDistanceKm),
		Strategy: strategy,
		MaxPOIs:  opt.MaxPOIs,
	}), nil
}
