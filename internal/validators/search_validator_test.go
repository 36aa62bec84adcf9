package validators

import (
	"errors"
	"testing"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/models"
)

func validQuery() *models.FlightSearchQuery {
	return &models.FlightSearchQuery{
		DepartureAirportCode: "AMS",
		ArrivalAirportCode:   "LIS",
		DepartureDate:        "2026-09-10",
		ArrivalDate:          "2026-09-17",
	}
}

func TestValidateRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *models.FlightSearchQuery)
		wantErr bool
	}{
		{"complete query", func(q *models.FlightSearchQuery) {}, false},
		{"missing departure airport", func(q *models.FlightSearchQuery) { q.DepartureAirportCode = "" }, true},
		{"missing arrival airport", func(q *models.FlightSearchQuery) { q.ArrivalAirportCode = "" }, true},
		{"missing departure date", func(q *models.FlightSearchQuery) { q.DepartureDate = "" }, true},
		{"missing return date", func(q *models.FlightSearchQuery) { q.ArrivalDate = "" }, true},
	}

	v := NewSearchValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mutate(q)
			err := v.ValidateRoundTrip(q)
			if tt.wantErr {
				var validationErr *apperrors.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("expected a validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateOneWay(t *testing.T) {
	v := NewSearchValidator()

	q := validQuery()
	q.ArrivalDate = ""
	if err := v.ValidateOneWay(q); err != nil {
		t.Errorf("one-way must not require a return date: %v", err)
	}

	q.DepartureDate = ""
	if err := v.ValidateOneWay(q); err == nil {
		t.Error("expected an error for a missing departure date")
	}
}

func TestValidateTracking(t *testing.T) {
	v := NewSearchValidator()

	if err := v.ValidateTracking("1697", "KLM", "20260910"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, args := range [][3]string{
		{"", "KLM", "20260910"},
		{"1697", "", "20260910"},
		{"1697", "KLM", ""},
	} {
		if err := v.ValidateTracking(args[0], args[1], args[2]); err == nil {
			t.Errorf("expected an error for %v", args)
		}
	}
}
