package models

// RawFlightStatus is one airline-tracking entry as returned by the vendor.
// The endpoint answers with either a single object or a list of them.
type RawFlightStatus struct {
	FlightNumber string           `json:"flightNumber"`
	Num          string           `json:"num"`
	Airline      string           `json:"airline"`
	Departure    *RawTrackingStop `json:"departure"`
	Arrival      *RawTrackingStop `json:"arrival"`
	Status       string           `json:"status"`
	FlightStatus string           `json:"flightStatus"`
}

type RawTrackingStop struct {
	Airport           string `json:"airport"`
	AirportCode       string `json:"airportCode"`
	DepartureDateTime string `json:"departureDateTime"`
	ArrivalDateTime   string `json:"arrivalDateTime"`
	Terminal          string `json:"terminal"`
	Gate              string `json:"gate"`
}

// TrackedFlight is the simplified tracking record returned to clients.
type TrackedFlight struct {
	FlightNumber string         `json:"flightNumber"`
	Airline      string         `json:"airline"`
	Departure    TrackedSegment `json:"departure"`
	Arrival      TrackedSegment `json:"arrival"`
	Status       string         `json:"status"`
}

type TrackedSegment struct {
	Airport  string `json:"airport"`
	Code     string `json:"code"`
	Time     string `json:"time"`
	Terminal string `json:"terminal"`
	Gate     string `json:"gate"`
}
