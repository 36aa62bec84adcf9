package repositories

import (
	"context"
	"fmt"

	"flywise-backend/internal/models"
	"flywise-backend/pkg/database"
	"flywise-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type searchEventRepository struct {
	collection *mongo.Collection
}

func NewSearchEventRepository() SearchEventRepository {
	return &searchEventRepository{
		collection: database.DB.Collection(database.SearchEventsCollection),
	}
}

func (r *searchEventRepository) Insert(ctx context.Context, event *models.SearchEvent) error {
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		logger.GlobalLogger.Errorf("Failed to insert search event: route=%s, error=%v", event.Route, err)
		return fmt.Errorf("failed to insert search event: %v", err)
	}
	return nil
}

// TopRoutes groups logged searches by route and trip type and returns the
// most-searched pairs, highest count first.
func (r *searchEventRepository) TopRoutes(ctx context.Context, limit int) ([]models.RouteStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "route", Value: "$route"},
				{Key: "trip_type", Value: "$trip_type"},
			}},
			{Key: "searches", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "searches", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "route", Value: "$_id.route"},
			{Key: "trip_type", Value: "$_id.trip_type"},
			{Key: "searches", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		logger.GlobalLogger.Errorf("Top routes aggregation failed: error=%v", err)
		return nil, fmt.Errorf("top routes aggregation failed: %v", err)
	}
	defer cursor.Close(ctx)

	stats := make([]models.RouteStat, 0, limit)
	if err := cursor.All(ctx, &stats); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode top routes: error=%v", err)
		return nil, fmt.Errorf("failed to decode top routes: %v", err)
	}
	return stats, nil
}
