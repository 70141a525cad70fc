package planner

import (
	"math"
	"strings"

	"tripplanner/internal/domain/entity"
	domainerrors "tripplanner/internal/domain/errors"
	"tripplanner/internal/errors"
)

// Strategy selects how the next stop of the tour is chosen.
type Strategy string

const (
	// StrategyGreedy picks the neighbour with the best blended score.
	StrategyGreedy Strategy = "greedy"
	// StrategyShortestPath picks the unvisited POI closest by shortest-path travel time.
	StrategyShortestPath Strategy = "shortest-path"
)

// Labels reported as the itinerary's optimization method.
const (
	MethodGreedy       = "multi-criteria-greedy"
	MethodShortestPath = "shortest-path-nearest"
)

// Strategies lists the supported strategies, default first.
func Strategies() []Strategy {
	return []Strategy{StrategyGreedy, StrategyShortestPath}
}

// ParseStrategy resolves a strategy name case-insensitively. An empty name
// resolves to StrategyGreedy.
func ParseStrategy(raw string) (Strategy, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return StrategyGreedy, nil
	}
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}

	return "", errors.WithStack(domainerrors.ErrUnknownStrategy.WithDetailsf("strategy %q", raw))
}

// Method returns the label recorded in itinerary metadata.
func (s Strategy) Method() string {
	if s == StrategyShortestPath {
		return MethodShortestPath
	}

	return MethodGreedy
}

// scoring carries the per-call inputs of the greedy scorer.
type scoring struct {
	weights   Weights
	relevance map[string]float64
}

// edgeScore blends travel time, relevance and rating for moving along edge.
func (s scoring) edgeScore(edge Edge, to *entity.PointOfInterest) float64 {
	return s.weights.TravelTime*(1/(1+edge.TravelTimeHours)) +
		s.weights.Relevance*(s.relevance[to.ID]/10) +
		s.weights.Rating*(to.Rating/5)
}

// startScore ranks candidate starting POIs.
func (s scoring) startScore(poi *entity.PointOfInterest) float64 {
	return s.weights.Relevance*(s.relevance[poi.ID]/5) + s.weights.Rating*(poi.Rating/5)
}

// pickStart returns the first node with the highest start score.
func pickStart(g *Graph, sc scoring) string {
	start := ""
	best := math.Inf(-1)
	for _, id := range g.Order {
		if score := sc.startScore(g.Nodes[id]); score > best {
			best = score
			start = id
		}
	}

	return start
}

type nextStopFunc func(current string, visited map[string]bool) (Edge, bool)

// constructTour walks g from start, visiting every node once, and annotates
// each departed POI with the travel time to the next stop. On a complete
// graph with finite scores a next stop always exists; a walk that ends early
// is reported rather than returned short.
func constructTour(g *Graph, start string, strategy Strategy, sc scoring) ([]*entity.PointOfInterest, error) {
	if _, exists := g.Nodes[start]; !exists {
		return nil, errors.Errorf("tour start %q is not in the graph", start)
	}

	var next nextStopFunc
	switch strategy {
	case StrategyShortestPath:
		next = shortestPathNext(g)
	default:
		next = greedyNext(g, sc)
	}

	tour := make([]*entity.PointOfInterest, 0, g.Len())
	visited := make(map[string]bool, g.Len())

	current := start
	visited[current] = true
	tour = append(tour, g.Nodes[current])

	for len(tour) < g.Len() {
		edge, ok := next(current, visited)
		if !ok {
			return nil, errors.Errorf("tour stalled at %q after %d of %d POIs", current, len(tour), g.Len())
		}
		travel := edge.TravelTimeHours
		g.Nodes[current].TravelTimeToNext = &travel

		current = edge.To
		visited[current] = true
		tour = append(tour, g.Nodes[current])
	}

	return tour, nil
}

// greedyNext scores every unvisited neighbour; the first strictly highest wins.
func greedyNext(g *Graph, sc scoring) nextStopFunc {
	return func(current string, visited map[string]bool) (Edge, bool) {
		var (
			best      Edge
			bestScore = math.Inf(-1)
			found     bool
		)
		for _, edge := range g.Adjacency[current] {
			if visited[edge.To] {
				continue
			}
			if score := sc.edgeScore(edge, g.Nodes[edge.To]); score > bestScore {
				best, bestScore, found = edge, score, true
			}
		}

		return best, found
	}
}

// shortestPathNext moves to the unvisited node with the smallest shortest-path
// travel time from the current node. The reported hop time is that path's
// total, which equals the direct edge on a metric graph.
func shortestPathNext(g *Graph) nextStopFunc {
	return func(current string, visited map[string]bool) (Edge, bool) {
		times := ShortestTravelTimes(g, current)

		var (
			best     Edge
			bestTime = math.Inf(1)
			found    bool
		)
		for _, id := range g.Order {
			if visited[id] {
				continue
			}
			hours, reachable := times[id]
			if !reachable || hours >= bestTime {
				continue
			}
			edge, ok := g.Edge(current, id)
			if !ok {
				continue
			}
			edge.TravelTimeHours = hours
			best, bestTime, found = edge, hours, true
		}

		return best, found
	}
}
