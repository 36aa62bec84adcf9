package handlers

import (
	"net/http"
	"strconv"

	apperrors "flywise-backend/internal/errors"
	"flywise-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// TopRoutes godoc
// @Summary Most-searched routes
// @Description Top-N route and trip-type pairs by search count. Empty when no analytics store is configured.
// @Tags Analytics
// @Produce json
// @Param limit query int false "Number of routes" default(5)
// @Success 200 {array} models.RouteStat
// @Failure 500 {object} map[string]string
// @Router /analytics/top-routes [get]
func (h *AnalyticsHandler) TopRoutes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	stats, err := h.analyticsService.TopRoutes(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, apperrors.MsgServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, stats)
}
