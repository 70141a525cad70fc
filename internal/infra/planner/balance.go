package planner

import (
	"slices"

	"tripplanner/internal/domain/entity"
)

const (
	overloadRatio  = 1.3
	underloadRatio = 0.8
)

// balanceDays reconciles the bucket count with days and then runs one
// load-rebalancing sweep. tourIndex maps POI id to its tour position.
func balanceDays(buckets [][]*entity.PointOfInterest, days int, tourIndex map[string]int) [][]*entity.PointOfInterest {
	buckets = reconcileDayCount(buckets, days)
	rebalanceLoad(buckets, tourIndex)

	return buckets
}

// reconcileDayCount pads with empty buckets or merges adjacent buckets until
// exactly days remain. Each merge takes the adjacent pair with the smallest
// combined POI count, the first such pair on ties.
func reconcileDayCount(buckets [][]*entity.PointOfInterest, days int) [][]*entity.PointOfInterest {
	for len(buckets) < days {
		buckets = append(buckets, nil)
	}

	for len(buckets) > days {
		pair := 0
		smallest := len(buckets[0]) + len(buckets[1])
		for i := 1; i < len(buckets)-1; i++ {
			if combined := len(buckets[i]) + len(buckets[i+1]); combined < smallest {
				smallest = combined
				pair = i
			}
		}

		merged := make([]*entity.PointOfInterest, 0, smallest)
		merged = append(merged, buckets[pair]...)
		merged = append(merged, buckets[pair+1]...)
		buckets[pair] = merged
		buckets = slices.Delete(buckets, pair+1, pair+2)
	}

	return buckets
}

// rebalanceLoad sweeps the buckets once in order. An overloaded bucket with
// at least two POIs gives its least important POI to the least loaded
// underloaded bucket, if there is one. Loads are updated as POIs move but
// the mean is fixed for the sweep.
func rebalanceLoad(buckets [][]*entity.PointOfInterest, tourIndex map[string]int) {
	if len(buckets) < 2 {
		return
	}

	loads := make([]float64, len(buckets))
	total := 0.0
	for i, bucket := range buckets {
		for _, poi := range bucket {
			loads[i] += poi.TimeRequired
		}
		total += loads[i]
	}
	mean := total / float64(len(buckets))
	if mean <= 0 {
		return
	}

	for i := range buckets {
		if loads[i] <= overloadRatio*mean || len(buckets[i]) < 2 {
			continue
		}

		target := -1
		for j := range buckets {
			if j == i || loads[j] >= underloadRatio*mean {
				continue
			}
			if target == -1 || loads[j] < loads[target] {
				target = j
			}
		}
		if target == -1 {
			continue
		}

		idx := leastImportant(buckets[i])
		poi := buckets[i][idx]
		buckets[i] = slices.Delete(buckets[i], idx, idx+1)
		buckets[target] = insertInTourOrder(buckets[target], poi, tourIndex)
		loads[i] -= poi.TimeRequired
		loads[target] += poi.TimeRequired
	}
}

// leastImportant returns the index of the first POI with the lowest importance.
func leastImportant(bucket []*entity.PointOfInterest) int {
	idx := 0
	for i, poi := range bucket {
		if poi.Importance < bucket[idx].Importance {
			idx = i
		}
	}

	return idx
}

func insertInTourOrder(bucket []*entity.PointOfInterest, poi *entity.PointOfInterest, tourIndex map[string]int) []*entity.PointOfInterest {
	pos, _ := slices.BinarySearchFunc(bucket, tourIndex[poi.ID], func(p *entity.PointOfInterest, target int) int {
		return tourIndex[p.ID] - target
	})

	return slices.Insert(bucket, pos, poi)
}

// detachMovedLegs clears TravelTimeToNext where the following stop of a day
// is not the POI's tour successor, which happens around POIs moved by
// rebalancing. The last stop of each day keeps its tour leg.
func detachMovedLegs(buckets [][]*entity.PointOfInterest, tourIndex map[string]int) {
	for _, bucket := range buckets {
		for i := 0; i+1 < len(bucket); i++ {
			if tourIndex[bucket[i+1].ID] != tourIndex[bucket[i].ID]+1 {
				bucket[i].TravelTimeToNext = nil
			}
		}
	}
}
