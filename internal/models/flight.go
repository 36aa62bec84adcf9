package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// TripType selects which vendor search endpoint produced a response. The
// normalization pipeline is identical for both values.
type TripType string

const (
	TripRoundTrip TripType = "roundtrip"
	TripOneWay    TripType = "oneway"
)

// FlexID accepts vendor identifiers that arrive either as JSON strings or as
// numbers and normalizes them to their string form.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// SearchResponse is the raw vendor flight-search payload. Any of the arrays
// may be absent; absent arrays are treated as empty.
type SearchResponse struct {
	Itineraries []RawItinerary `json:"itineraries"`
	Legs        []RawLeg       `json:"legs"`
	Places      []RawPlace     `json:"places"`
	Currency    string         `json:"currency"`
}

// RawItinerary is a vendor bookable flight combination referencing legs by id.
// Price quotations are kept as loose maps because the vendor mixes numeric and
// string amounts and two currency field spellings.
type RawItinerary struct {
	ID             FlexID                 `json:"id"`
	LegIDs         []FlexID               `json:"leg_ids"`
	CheapestPrice  map[string]interface{} `json:"cheapest_price"`
	PricingOptions []PricingOption        `json:"pricing_options"`
}

type PricingOption struct {
	Price map[string]interface{} `json:"price"`
}

// RawLeg is one scheduled vendor flight segment. Carrier fields may each be a
// single value or a list, and each element may be an object or a bare code.
type RawLeg struct {
	ID                    FlexID      `json:"id"`
	OriginPlaceID         FlexID      `json:"origin_place_id"`
	DestinationPlaceID    FlexID      `json:"destination_place_id"`
	Departure             string      `json:"departure"`
	Arrival               string      `json:"arrival"`
	StopCount             int         `json:"stop_count"`
	DurationMins          *int        `json:"duration_mins"`
	Duration              *int        `json:"duration"`
	MarketingCarriers     interface{} `json:"marketing_carriers"`
	OperatingCarriers     interface{} `json:"operating_carriers"`
	MarketingCarrierCodes interface{} `json:"marketing_carrier_codes"`
	OperatingCarrierCodes interface{} `json:"operating_carrier_codes"`
}

// RawPlace is a vendor airport or location entity.
type RawPlace struct {
	ID   FlexID `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Offer is the normalized, user-facing representation of an itinerary. Price
// is nil when the vendor quotation is absent or unparseable.
type Offer struct {
	ID                string     `json:"id"`
	Price             *float64   `json:"price"`
	Currency          string     `json:"currency"`
	Legs              []OfferLeg `json:"legs"`
	TotalDurationMins int        `json:"total_duration_mins"`
}

// OfferLeg is a normalized flight segment inside an Offer.
type OfferLeg struct {
	LegID        string `json:"leg_id"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	From         string `json:"from"`
	To           string `json:"to"`
	Stops        int    `json:"stops"`
	DurationMins int    `json:"duration_mins"`
	Airline      string `json:"airline"`
}

// FlightSearchQuery carries the client's trip parameters. Numeric fields stay
// strings because they are forwarded verbatim as vendor URL path segments.
type FlightSearchQuery struct {
	DepartureAirportCode string
	ArrivalAirportCode   string
	DepartureDate        string
	ArrivalDate          string
	Adults               string
	Children             string
	Infants              string
	CabinClass           string
	Currency             string
}

// Route returns the origin-destination pair used as the analytics route key.
func (q *FlightSearchQuery) Route() string {
	return q.DepartureAirportCode + "-" + q.ArrivalAirportCode
}

// TravelerCount sums adults, children and infants, ignoring unparseable
// values. A count of zero is reported as one traveler.
func (q *FlightSearchQuery) TravelerCount() int {
	total := 0
	for _, v := range []string{q.Adults, q.Children, q.Infants} {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			total += n
		}
	}
	if total == 0 {
		return 1
	}
	return total
}
