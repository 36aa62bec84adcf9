package repositories

import (
	"context"

	"flywise-backend/internal/models"
)

// SearchEventRepository persists logged searches and answers the top-routes
// aggregation.
type SearchEventRepository interface {
	Insert(ctx context.Context, event *models.SearchEvent) error
	TopRoutes(ctx context.Context, limit int) ([]models.RouteStat, error)
}
