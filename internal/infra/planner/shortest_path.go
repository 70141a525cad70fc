package planner

import "math"

// ShortestTravelTimes runs Dijkstra from source over g, weighting edges by
// travel time. Unreachable or unknown nodes are absent from the result.
func ShortestTravelTimes(g *Graph, source string) map[string]float64 {
	if _, exists := g.Nodes[source]; !exists {
		return map[string]float64{}
	}

	distances := make(map[string]float64, g.Len())
	for _, id := range g.Order {
		distances[id] = math.Inf(1)
	}
	distances[source] = 0

	visited := make(map[string]bool, g.Len())
	pq := NewMinQueue[string]()
	pq.Push(source, 0)

	for !pq.IsEmpty() {
		current, dist, _ := pq.PopMin()
		if visited[current] {
			continue
		}
		visited[current] = true

		for _, edge := range g.Adjacency[current] {
			if visited[edge.To] {
				continue
			}
			newDist := dist + edge.TravelTimeHours
			if newDist < distances[edge.To] {
				distances[edge.To] = newDist
				pq.Push(edge.To, newDist)
			}
		}
	}

	for id, dist := range distances {
		if math.IsInf(dist, 1) {
			delete(distances, id)
		}
	}

	return distances
}
