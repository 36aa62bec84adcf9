package transformers

import (
	"flywise-backend/internal/models"
)

// OfferTransformer turns a raw vendor search response into ranked offers.
type OfferTransformer interface {
	Normalize(raw *models.SearchResponse, tripType models.TripType) []models.Offer
}

// TrackingTransformer simplifies raw airline-tracking entries.
type TrackingTransformer interface {
	Simplify(raw []models.RawFlightStatus, fallbackAirline string) []models.TrackedFlight
}
