package planner

import "tripplanner/internal/domain/entity"

// Edge connects two POIs of the complete graph.
type Edge struct {
	From            string
	To              string
	DistanceKm      float64
	TravelTimeHours float64
}

// Graph is the complete, symmetric travel graph over a POI set.
type Graph struct {
	Nodes map[string]*entity.PointOfInterest
	// Order keeps the input order so every enumeration is deterministic.
	Order     []string
	Adjacency map[string][]Edge
}

// BuildGraph connects every POI to every other POI. Each pair is measured
// once and stored in both directions, so edges are exactly symmetric.
// IDs must be unique; callers validate this beforehand.
func BuildGraph(pois []*entity.PointOfInterest, metrics GeoMetrics) *Graph {
	n := len(pois)
	g := &Graph{
		Nodes:     make(map[string]*entity.PointOfInterest, n),
		Order:     make([]string, 0, n),
		Adjacency: make(map[string][]Edge, n),
	}

	for _, poi := range pois {
		g.Nodes[poi.ID] = poi
		g.Order = append(g.Order, poi.ID)
		g.Adjacency[poi.ID] = make([]Edge, 0, max(n-1, 0))
	}

	// Iterating i ascending keeps every adjacency list in input order.
	for i := range n {
		for j := i + 1; j < n; j++ {
			a, b := pois[i], pois[j]
			distance := metrics.DistanceKm(a.Location, b.Location)
			hours := distance / metrics.SpeedKmh()

			g.Adjacency[a.ID] = append(g.Adjacency[a.ID], Edge{From: a.ID, To: b.ID, DistanceKm: distance, TravelTimeHours: hours})
			g.Adjacency[b.ID] = append(g.Adjacency[b.ID], Edge{From: b.ID, To: a.ID, DistanceKm: distance, TravelTimeHours: hours})
		}
	}

	return g
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.Order)
}

// Edge returns the edge from one node to another.
func (g *Graph) Edge(from, to string) (Edge, bool) {
	for _, edge := range g.Adjacency[from] {
		if edge.To == to {
			return edge, true
		}
	}

	return Edge{}, false
}
