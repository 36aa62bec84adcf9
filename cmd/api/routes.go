package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"flywise-backend/pkg/database"
	"flywise-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupCORS configures CORS middleware
func setupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if os.Getenv("ENV") == "production" {
		corsConfig.AllowAllOrigins = false
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
		if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
			corsConfig.AllowOrigins = []string{origins}
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With"}
	corsConfig.ExposeHeaders = []string{"Content-Length"}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupObservability()
	a.setupAPIRoutes()
}

// setupObservability configures the metrics and health endpoints
func (a *App) setupObservability() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.Router.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "analytics": "disabled"}

		if a.analyticsEnabled {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := database.MongoClient.Ping(ctx, nil); err != nil {
				logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
				status["analytics"] = "unreachable"
			} else {
				status["analytics"] = "ok"
			}
		}

		c.JSON(http.StatusOK, status)
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	a.Router.GET("/roundtrip", a.FlightHandler.SearchRoundTrip)
	a.Router.GET("/oneway", a.FlightHandler.SearchOneWay)
	a.Router.GET("/trackFlight", a.TrackingHandler.TrackFlight)
	a.Router.GET("/phrase-guide/:lang", a.PhraseHandler.GetGuide)
	a.Router.POST("/phrase-guide/audio", a.PhraseHandler.SynthesizeAudio)
	a.Router.GET("/health-insight", a.HealthInsightHandler.GetInsight)
	a.Router.GET("/analytics/top-routes", a.AnalyticsHandler.TopRoutes)
}
