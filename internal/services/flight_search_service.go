package services

import (
	"context"

	"flywise-backend/internal/models"
	"flywise-backend/internal/transformers"
	"flywise-backend/internal/validators"
)

// FlightSearcher is the vendor search surface used by the service. Satisfied
// by *flightapi.Client.
type FlightSearcher interface {
	SearchRoundTrip(ctx context.Context, q *models.FlightSearchQuery) (*models.SearchResponse, error)
	SearchOneWay(ctx context.Context, q *models.FlightSearchQuery) (*models.SearchResponse, error)
}

// FlightSearchService validates trip parameters, calls the vendor and runs
// the offer normalization pipeline. Each request is one synchronous vendor
// call followed by pure computation; nothing is shared between requests.
type FlightSearchService struct {
	client     FlightSearcher
	normalizer transformers.OfferTransformer
	validator  validators.SearchValidator
	analytics  *AnalyticsService
}

func NewFlightSearchService(
	client FlightSearcher,
	normalizer transformers.OfferTransformer,
	validator validators.SearchValidator,
	analytics *AnalyticsService,
) *FlightSearchService {
	return &FlightSearchService{
		client:     client,
		normalizer: normalizer,
		validator:  validator,
		analytics:  analytics,
	}
}

// SearchRoundTrip returns at most five offers sorted by ascending price. On
// success a search event is dispatched fire-and-forget.
func (s *FlightSearchService) SearchRoundTrip(ctx context.Context, q *models.FlightSearchQuery) ([]models.Offer, error) {
	if err := s.validator.ValidateRoundTrip(q); err != nil {
		return nil, err
	}

	raw, err := s.client.SearchRoundTrip(ctx, q)
	if err != nil {
		return nil, err
	}

	offers := s.normalizer.Normalize(raw, models.TripRoundTrip)

	s.analytics.LogSearch(&models.SearchEvent{
		Route:      q.Route(),
		TripType:   string(models.TripRoundTrip),
		DepartDate: q.DepartureDate,
		ReturnDate: q.ArrivalDate,
		Currency:   q.Currency,
		Travelers:  q.TravelerCount(),
	})

	return offers, nil
}

// SearchOneWay returns at most five offers sorted by ascending price.
func (s *FlightSearchService) SearchOneWay(ctx context.Context, q *models.FlightSearchQuery) ([]models.Offer, error) {
	if err := s.validator.ValidateOneWay(q); err != nil {
		return nil, err
	}

	raw, err := s.client.SearchOneWay(ctx, q)
	if err != nil {
		return nil, err
	}

	return s.normalizer.Normalize(raw, models.TripOneWay), nil
}
