// Package constants holds identifiers shared across configuration and infra.
package constants

// Pub/Sub providers accepted in the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EventTypeItineraryGenerated is the attribute value attached to published itinerary events.
const EventTypeItineraryGenerated = "itinerary.generated"
