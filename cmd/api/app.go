package main

import (
	"net/http"

	"flywise-backend/internal/handlers"
	"flywise-backend/internal/middleware"
	"flywise-backend/internal/repositories"
	"flywise-backend/internal/services"
	"flywise-backend/internal/transformers"
	"flywise-backend/internal/validators"
	"flywise-backend/pkg/config"
	"flywise-backend/pkg/database"
	"flywise-backend/pkg/elevenlabs"
	"flywise-backend/pkg/flightapi"
	"flywise-backend/pkg/logger"
	"flywise-backend/pkg/metrics"
	"flywise-backend/pkg/openweather"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config               *config.Config
	Router               *gin.Engine
	FlightHandler        *handlers.FlightHandler
	TrackingHandler      *handlers.TrackingHandler
	PhraseHandler        *handlers.PhraseHandler
	HealthInsightHandler *handlers.HealthInsightHandler
	AnalyticsHandler     *handlers.AnalyticsHandler
	RateLimiter          *middleware.RateLimiter
	Server               *http.Server

	analyticsEnabled bool
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeAnalyticsStore()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// connect the analytics store; the server runs without it when no URI is
// configured or the connection fails, search logging just becomes a no-op.
func (a *App) initializeAnalyticsStore() {
	if a.Config.Analytics.MongoURI == "" {
		logger.GlobalLogger.Println("Analytics store not configured, search logging disabled")
		return
	}
	if err := database.InitDB(a.Config.Analytics.MongoURI, a.Config.Analytics.DBName); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize analytics store, search logging disabled: %v", err)
		return
	}
	a.analyticsEnabled = true
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// vendor clients
	flightClient := flightapi.NewClient(a.Config.FlightAPI.BaseURL, a.Config.FlightAPI.APIKey)
	weatherClient := openweather.NewClient(a.Config.OpenWeather.APIKey)
	ttsClient := elevenlabs.NewClient(a.Config.ElevenLabs.APIKey, a.Config.ElevenLabs.VoiceID)

	// repositories
	var eventRepo repositories.SearchEventRepository
	if a.analyticsEnabled {
		eventRepo = repositories.NewSearchEventRepository()
	}

	// transformers
	offerTrans := transformers.NewOfferTransformer()
	trackingTrans := transformers.NewTrackingTransformer()

	// validators
	searchValidator := validators.NewSearchValidator()

	// services
	analyticsService := services.NewAnalyticsService(eventRepo)
	searchService := services.NewFlightSearchService(flightClient, offerTrans, searchValidator, analyticsService)
	trackingService := services.NewTrackingService(flightClient, trackingTrans, searchValidator)
	phraseService := services.NewPhraseService()
	healthService := services.NewHealthService(weatherClient)

	// handlers
	a.FlightHandler = handlers.NewFlightHandler(searchService)
	a.TrackingHandler = handlers.NewTrackingHandler(trackingService)
	a.PhraseHandler = handlers.NewPhraseHandler(phraseService, ttsClient)
	a.HealthInsightHandler = handlers.NewHealthInsightHandler(healthService)
	a.AnalyticsHandler = handlers.NewAnalyticsHandler(analyticsService)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

func (a *App) setupMiddleware() {
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.SecureHeaders())
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	a.Router.Use(setupCORS())
	a.Router.Use(gin.Recovery())
}

// cleanup operations
func (a *App) cleanup() {
	if a.analyticsEnabled {
		database.CloseDB()
	}
}
