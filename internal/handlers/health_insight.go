package handlers

import (
	"net/http"
	"time"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const insightDateLayout = "2006-01-02"

type HealthInsightHandler struct {
	healthService *services.HealthService
}

func NewHealthInsightHandler(healthService *services.HealthService) *HealthInsightHandler {
	return &HealthInsightHandler{healthService: healthService}
}

// GetInsight summarizes forecast air quality for a destination over the trip
// window.
func (h *HealthInsightHandler) GetInsight(c *gin.Context) {
	if !h.healthService.Configured() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OpenWeather is not configured on the server."})
		return
	}

	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	start, err := time.Parse(insightDateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be in YYYY-MM-DD format"})
		return
	}
	end, err := time.Parse(insightDateLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be in YYYY-MM-DD format"})
		return
	}
	// Count the whole final day of the trip.
	end = end.Add(24*time.Hour - time.Second)

	insight, err := h.healthService.Insight(c.Request.Context(), lat, lon, start, end)
	if err != nil {
		respondError(c, err, apperrors.MsgServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, insight)
}
