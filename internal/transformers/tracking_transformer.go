package transformers

import (
	"flywise-backend/internal/models"
)

type trackingTransformer struct{}

func NewTrackingTransformer() TrackingTransformer {
	return &trackingTransformer{}
}

// Simplify flattens raw tracking entries to departure/arrival segments.
// Entries with neither segment are dropped. fallbackAirline fills in when the
// vendor omits the airline name (it is the name the caller searched for).
func (t *trackingTransformer) Simplify(raw []models.RawFlightStatus, fallbackAirline string) []models.TrackedFlight {
	tracked := make([]models.TrackedFlight, 0, len(raw))
	for _, item := range raw {
		if item.Departure == nil && item.Arrival == nil {
			continue
		}

		flightNumber := item.FlightNumber
		if flightNumber == "" {
			flightNumber = item.Num
		}
		airline := item.Airline
		if airline == "" {
			airline = fallbackAirline
		}
		status := item.Status
		if status == "" {
			status = item.FlightStatus
		}

		tracked = append(tracked, models.TrackedFlight{
			FlightNumber: flightNumber,
			Airline:      airline,
			Departure:    simplifyStop(item.Departure, true),
			Arrival:      simplifyStop(item.Arrival, false),
			Status:       status,
		})
	}
	return tracked
}

func simplifyStop(stop *models.RawTrackingStop, departure bool) models.TrackedSegment {
	if stop == nil {
		return models.TrackedSegment{}
	}
	segment := models.TrackedSegment{
		Airport:  stop.Airport,
		Code:     stop.AirportCode,
		Terminal: stop.Terminal,
		Gate:     stop.Gate,
	}
	if departure {
		segment.Time = stop.DepartureDateTime
	} else {
		segment.Time = stop.ArrivalDateTime
	}
	return segment
}
