package validators

import (
	"flywise-backend/internal/models"
)

type SearchValidator interface {
	ValidateRoundTrip(q *models.FlightSearchQuery) error
	ValidateOneWay(q *models.FlightSearchQuery) error
	ValidateTracking(num, name, date string) error
}
