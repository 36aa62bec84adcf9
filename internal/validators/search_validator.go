package validators

import (
	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/models"
)

type searchValidator struct{}

func NewSearchValidator() SearchValidator {
	return &searchValidator{}
}

// ValidateRoundTrip requires both airports and both travel dates. Validation
// runs before any vendor call is made.
func (v *searchValidator) ValidateRoundTrip(q *models.FlightSearchQuery) error {
	if q.DepartureAirportCode == "" || q.ArrivalAirportCode == "" ||
		q.DepartureDate == "" || q.ArrivalDate == "" {
		return apperrors.NewValidationError("Missing required airport or date info")
	}
	return nil
}

// ValidateOneWay requires both airports and the outbound date.
func (v *searchValidator) ValidateOneWay(q *models.FlightSearchQuery) error {
	if q.DepartureAirportCode == "" || q.ArrivalAirportCode == "" || q.DepartureDate == "" {
		return apperrors.NewValidationError("Missing required airport or date info")
	}
	return nil
}

func (v *searchValidator) ValidateTracking(num, name, date string) error {
	if num == "" || name == "" || date == "" {
		return apperrors.NewValidationError("missing required data")
	}
	return nil
}
