package handlers

import (
	"net/http"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/models"
	"flywise-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	searchService *services.FlightSearchService
}

func NewFlightHandler(searchService *services.FlightSearchService) *FlightHandler {
	return &FlightHandler{searchService: searchService}
}

func searchQueryFromContext(c *gin.Context) *models.FlightSearchQuery {
	return &models.FlightSearchQuery{
		DepartureAirportCode: c.Query("departure_airport_code"),
		ArrivalAirportCode:   c.Query("arrival_airport_code"),
		DepartureDate:        c.Query("departure_date"),
		ArrivalDate:          c.Query("arrival_date"),
		Adults:               c.DefaultQuery("number_of_adults", "1"),
		Children:             c.DefaultQuery("number_of_children", "0"),
		Infants:              c.DefaultQuery("number_of_infants", "0"),
		CabinClass:           c.DefaultQuery("cabin_class", "Economy"),
		Currency:             c.DefaultQuery("currency", "EUR"),
	}
}

// SearchRoundTrip godoc
// @Summary Search round-trip flights
// @Description Proxy the vendor round-trip search and return up to five normalized offers sorted by ascending price
// @Tags Flights
// @Produce json
// @Param departure_airport_code query string true "Origin airport code"
// @Param arrival_airport_code query string true "Destination airport code"
// @Param departure_date query string true "Outbound date (YYYY-MM-DD)"
// @Param arrival_date query string true "Return date (YYYY-MM-DD)"
// @Param number_of_adults query int false "Adult travelers" default(1)
// @Param number_of_children query int false "Child travelers" default(0)
// @Param number_of_infants query int false "Infant travelers" default(0)
// @Param cabin_class query string false "Cabin class" default(Economy)
// @Param currency query string false "Currency code" default(EUR)
// @Success 200 {array} models.Offer
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /roundtrip [get]
func (h *FlightHandler) SearchRoundTrip(c *gin.Context) {
	offers, err := h.searchService.SearchRoundTrip(c.Request.Context(), searchQueryFromContext(c))
	if err != nil {
		respondError(c, err, apperrors.MsgSearchFailed)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// SearchOneWay godoc
// @Summary Search one-way flights
// @Description Same offer shape as round-trip, without a return leg
// @Tags Flights
// @Produce json
// @Success 200 {array} models.Offer
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /oneway [get]
func (h *FlightHandler) SearchOneWay(c *gin.Context) {
	offers, err := h.searchService.SearchOneWay(c.Request.Context(), searchQueryFromContext(c))
	if err != nil {
		respondError(c, err, apperrors.MsgSearchFailed)
		return
	}
	c.JSON(http.StatusOK, offers)
}
