package services

import (
	"context"

	"flywise-backend/internal/models"
	"flywise-backend/internal/transformers"
	"flywise-backend/internal/validators"
)

// FlightTracker is the vendor tracking surface used by the service.
// Satisfied by *flightapi.Client.
type FlightTracker interface {
	TrackFlight(ctx context.Context, num, name, date string) ([]models.RawFlightStatus, error)
}

type TrackingService struct {
	client      FlightTracker
	transformer transformers.TrackingTransformer
	validator   validators.SearchValidator
}

func NewTrackingService(
	client FlightTracker,
	transformer transformers.TrackingTransformer,
	validator validators.SearchValidator,
) *TrackingService {
	return &TrackingService{
		client:      client,
		transformer: transformer,
		validator:   validator,
	}
}

// Track returns simplified live status entries for one flight.
func (s *TrackingService) Track(ctx context.Context, num, name, date string) ([]models.TrackedFlight, error) {
	if err := s.validator.ValidateTracking(num, name, date); err != nil {
		return nil, err
	}

	raw, err := s.client.TrackFlight(ctx, num, name, date)
	if err != nil {
		return nil, err
	}

	return s.transformer.Simplify(raw, name), nil
}
