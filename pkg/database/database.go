package database

import (
	"context"
	"fmt"
	"time"

	"flywise-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// SearchEventsCollection is the collection holding logged flight searches.
const SearchEventsCollection = "flywise_searches"

func InitDB(uri, dbName string) error {
	if uri == "" {
		return fmt.Errorf("missing MongoDB URI")
	}
	if dbName == "" {
		return fmt.Errorf("missing MongoDB database name")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(dbName)

	if err := CreateSearchEventIndexes(DB); err != nil {
		logger.GlobalLogger.Errorf("Failed to create search event indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully.")
	return nil
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
