package transformers

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"flywise-backend/internal/models"
)

// maxOffers caps the number of offers returned for a single search.
const maxOffers = 5

// defaultCurrency is assumed when neither the price quotation nor the
// response carries a currency code.
const defaultCurrency = "EUR"

// defaultAirlineLabel is used when no carrier can be resolved for a leg.
const defaultAirlineLabel = "Multiple airlines"

type offerTransformer struct{}

func NewOfferTransformer() OfferTransformer {
	return &offerTransformer{}
}

// Normalize maps every itinerary to an Offer, stable-sorts the result by
// ascending price with unpriced offers last, and truncates to maxOffers.
// Both trip types share the same pipeline; tripType only records which vendor
// endpoint produced the response.
func (t *offerTransformer) Normalize(raw *models.SearchResponse, tripType models.TripType) []models.Offer {
	legsByID := make(map[string]models.RawLeg, len(raw.Legs))
	for _, leg := range raw.Legs {
		legsByID[leg.ID.String()] = leg
	}
	placesByID := make(map[string]models.RawPlace, len(raw.Places))
	for _, place := range raw.Places {
		placesByID[place.ID.String()] = place
	}

	offers := make([]models.Offer, 0, len(raw.Itineraries))
	for _, it := range raw.Itineraries {
		offers = append(offers, t.buildOffer(it, legsByID, placesByID, raw.Currency))
	}

	// Stable sort keeps the original itinerary order among equal or
	// unresolved prices.
	sort.SliceStable(offers, func(i, j int) bool {
		return priceOrInf(offers[i].Price) < priceOrInf(offers[j].Price)
	})

	if len(offers) > maxOffers {
		offers = offers[:maxOffers]
	}
	return offers
}

func (t *offerTransformer) buildOffer(
	it models.RawItinerary,
	legsByID map[string]models.RawLeg,
	placesByID map[string]models.RawPlace,
	responseCurrency string,
) models.Offer {
	priceInfo := resolvePriceInfo(it)
	price := extractAmount(priceInfo)
	currency := extractCurrency(priceInfo, responseCurrency)

	legs := make([]models.OfferLeg, 0, len(it.LegIDs))
	totalDuration := 0
	for _, legID := range it.LegIDs {
		leg, ok := legsByID[legID.String()]
		if !ok {
			// Unresolvable references are dropped, never emitted as
			// placeholders.
			continue
		}
		offerLeg := t.buildLeg(leg, placesByID)
		totalDuration += offerLeg.DurationMins
		legs = append(legs, offerLeg)
	}

	return models.Offer{
		ID:                it.ID.String(),
		Price:             price,
		Currency:          currency,
		Legs:              legs,
		TotalDurationMins: totalDuration,
	}
}

func (t *offerTransformer) buildLeg(leg models.RawLeg, placesByID map[string]models.RawPlace) models.OfferLeg {
	duration := 0
	if leg.DurationMins != nil {
		duration = *leg.DurationMins
	} else if leg.Duration != nil {
		duration = *leg.Duration
	}

	return models.OfferLeg{
		LegID:        leg.ID.String(),
		Departure:    leg.Departure,
		Arrival:      leg.Arrival,
		From:         resolvePlaceLabel(leg.OriginPlaceID, placesByID),
		To:           resolvePlaceLabel(leg.DestinationPlaceID, placesByID),
		Stops:        leg.StopCount,
		DurationMins: duration,
		Airline:      resolveAirlineLabel(leg),
	}
}

// resolvePriceInfo prefers the vendor-designated cheapest price over the
// first generic pricing option.
func resolvePriceInfo(it models.RawItinerary) map[string]interface{} {
	if len(it.CheapestPrice) > 0 {
		return it.CheapestPrice
	}
	if len(it.PricingOptions) > 0 && len(it.PricingOptions[0].Price) > 0 {
		return it.PricingOptions[0].Price
	}
	return nil
}

// extractAmount coerces the quotation amount to a float. Absent or
// non-numeric amounts yield nil rather than an error.
func extractAmount(priceInfo map[string]interface{}) *float64 {
	if priceInfo == nil {
		return nil
	}
	return toFloat(priceInfo["amount"])
}

// extractCurrency follows the fallback chain currency_code, currency,
// response-level currency, then the hard default.
func extractCurrency(priceInfo map[string]interface{}, responseCurrency string) string {
	if code := getString(priceInfo, "currency_code"); code != "" {
		return code
	}
	if code := getString(priceInfo, "currency"); code != "" {
		return code
	}
	if responseCurrency != "" {
		return responseCurrency
	}
	return defaultCurrency
}

// resolvePlaceLabel prefers a place's code over its name over the raw
// reference id.
func resolvePlaceLabel(placeID models.FlexID, placesByID map[string]models.RawPlace) string {
	id := placeID.String()
	place, ok := placesByID[id]
	if !ok {
		return id
	}
	if place.Code != "" {
		return place.Code
	}
	if place.Name != "" {
		return place.Name
	}
	return id
}

// resolveAirlineLabel takes the first non-empty carrier field, normalizes a
// list to its first element, then prefers the carrier's name over its code
// over the raw value.
func resolveAirlineLabel(leg models.RawLeg) string {
	carrier := firstCarrier(
		leg.MarketingCarriers,
		leg.OperatingCarriers,
		leg.MarketingCarrierCodes,
		leg.OperatingCarrierCodes,
	)

	switch c := carrier.(type) {
	case nil:
	case map[string]interface{}:
		if name := getString(c, "name"); name != "" {
			return name
		}
		if code := getString(c, "code"); code != "" {
			return code
		}
	case string:
		if c != "" {
			return c
		}
	default:
		return fmt.Sprint(c)
	}
	return defaultAirlineLabel
}

// firstCarrier returns the first usable value among the candidate carrier
// fields, unwrapping lists to their first element and skipping empty ones.
func firstCarrier(candidates ...interface{}) interface{} {
	for _, candidate := range candidates {
		switch v := candidate.(type) {
		case nil:
			continue
		case []interface{}:
			if len(v) > 0 {
				return v[0]
			}
		default:
			return v
		}
	}
	return nil
}

func priceOrInf(price *float64) float64 {
	if price == nil {
		return math.Inf(1)
	}
	return *price
}

// toFloat coerces a JSON number or numeric string to a finite float,
// returning nil for anything else. ParseFloat accepts "NaN" and "Inf"
// spellings; those are not prices and would poison the sort comparator and
// JSON encoding, so they resolve to nil like any other non-numeric amount.
func toFloat(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return &n
	case int:
		f := float64(n)
		return &f
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return &f
		}
	}
	return nil
}

func getString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
