package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/babaygt/eatyq/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	CollectionUsers      = "users"
	CollectionMenus      = "menus"
	CollectionCategories = "categories"
	CollectionItems      = "items"
)

var db *mongo.Database

func Connect(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db = client.Database(cfg.MongoDatabase)

	log.Println("Connected to MongoDB")
	return nil
}

func GetDB() *mongo.Database {
	return db
}

// SetDB sets the database instance (used for testing)
func SetDB(database *mongo.Database) {
	db = database
}

func Disconnect(ctx context.Context) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}
