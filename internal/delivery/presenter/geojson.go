package presenter

import (
	"tripplanner/internal/domain/entity"
	"tripplanner/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds, exposed as the "kind" property.
const (
	FeatureKindStop  = "stop"
	FeatureKindRoute = "route"
)

// NewFeatureCollection renders the itinerary as one Point per located stop
// and one LineString per day with at least two located stops. Stops without
// a usable location are listed under the "unlocated" member only.
func NewFeatureCollection(result *usecase.PlanItineraryResult) *geojson.FeatureCollection {
	itinerary := result.Itinerary
	fc := geojson.NewFeatureCollection()

	var (
		all       orb.MultiPoint
		unlocated []string
	)
	for _, day := range itinerary.Days {
		var route orb.LineString
		for order, poi := range day.POIs {
			if poi.Location == nil || !poi.Location.IsValid() {
				unlocated = append(unlocated, poi.ID)
				continue
			}
			point := poi.Location.Point()
			all = append(all, point)
			route = append(route, point)

			fc.Append(newStopFeature(poi, point, day.Number, order+1, order == len(day.POIs)-1))
		}

		if len(route) >= 2 {
			feature := geojson.NewFeature(route)
			feature.Properties["kind"] = FeatureKindRoute
			feature.Properties["day"] = day.Number
			feature.Properties["totalHours"] = day.TotalHours()
			fc.Append(feature)
		}
	}

	if len(all) > 0 {
		fc.BBox = geojson.NewBBox(all.Bound())
	}

	fc.ExtraMembers = geojson.Properties{
		"itineraryId": result.ItineraryID,
		"metadata":    newMetadata(itinerary.Metadata),
		"days":        len(itinerary.Days),
	}
	if len(unlocated) > 0 {
		fc.ExtraMembers["unlocated"] = unlocated
	}

	return fc
}

func newStopFeature(poi *entity.PointOfInterest, point orb.Point, day, order int, lastOfDay bool) *geojson.Feature {
	feature := geojson.NewFeature(point)
	feature.ID = poi.ID
	feature.Properties["kind"] = FeatureKindStop
	feature.Properties["name"] = poi.Name
	feature.Properties["day"] = day
	feature.Properties["order"] = order
	feature.Properties["visitDuration"] = poi.VisitDuration
	feature.Properties["rating"] = poi.Rating
	feature.Properties["importance"] = poi.Importance
	feature.Properties["timeRequired"] = poi.TimeRequired
	if !lastOfDay && poi.TravelTimeToNext != nil {
		feature.Properties["travelTimeToNext"] = *poi.TravelTimeToNext
	}

	return feature
}
