package services

import (
	"context"
	"time"

	"flywise-backend/internal/models"
	"flywise-backend/internal/repositories"
	"flywise-backend/pkg/logger"
	"flywise-backend/pkg/metrics"

	"github.com/google/uuid"
)

const (
	defaultTopRoutesLimit = 5
	logSearchTimeout      = 5 * time.Second
)

// AnalyticsService is a best-effort search-event sink. A nil repository
// disables it: logging becomes a no-op and top-routes answers empty.
type AnalyticsService struct {
	repo repositories.SearchEventRepository
}

func NewAnalyticsService(repo repositories.SearchEventRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Enabled reports whether an analytics store is configured.
func (s *AnalyticsService) Enabled() bool {
	return s.repo != nil
}

// LogSearch dispatches the event on a detached goroutine and returns
// immediately. Failures are counted and logged, never propagated; the search
// response must not depend on this side effect.
func (s *AnalyticsService) LogSearch(event *models.SearchEvent) {
	if s.repo == nil {
		return
	}

	event.ID = uuid.NewString()
	if event.Travelers <= 0 {
		event.Travelers = 1
	}
	event.CreatedAt = time.Now().UTC()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GlobalLogger.Errorf("Search event logging panicked: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), logSearchTimeout)
		defer cancel()

		if err := s.repo.Insert(ctx, event); err != nil {
			metrics.SearchEventFailuresTotal.Inc()
			logger.GlobalLogger.Errorf("Failed to log search event: route=%s, error=%v", event.Route, err)
			return
		}
		metrics.SearchEventsLoggedTotal.Inc()
	}()
}

// TopRoutes returns the most-searched route/trip-type pairs. limit defaults
// to 5 when non-positive.
func (s *AnalyticsService) TopRoutes(ctx context.Context, limit int) ([]models.RouteStat, error) {
	if limit <= 0 {
		limit = defaultTopRoutesLimit
	}
	if s.repo == nil {
		return []models.RouteStat{}, nil
	}
	return s.repo.TopRoutes(ctx, limit)
}
