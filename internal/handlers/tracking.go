package handlers

import (
	"net/http"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	trackingService *services.TrackingService
}

func NewTrackingHandler(trackingService *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// TrackFlight looks up live status for one flight by carrier name, flight
// number and date.
func (h *TrackingHandler) TrackFlight(c *gin.Context) {
	num := c.Query("num")
	name := c.Query("name")
	date := c.Query("date")

	tracked, err := h.trackingService.Track(c.Request.Context(), num, name, date)
	if err != nil {
		respondError(c, err, apperrors.MsgTrackingFailed)
		return
	}
	c.JSON(http.StatusOK, tracked)
}
