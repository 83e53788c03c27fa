package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. CreateMany is
// idempotent, so this is safe to run on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_users_username"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_users_email"),
		},
	}
	if _, err := db.Collection(CollectionUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	// Parent-pointer lookups used by list operations and cascade checks
	childIndexes := []struct {
		collection string
		key        string
		name       string
	}{
		{CollectionMenus, "user", "idx_menus_user"},
		{CollectionCategories, "menu", "idx_categories_menu"},
		{CollectionItems, "category", "idx_items_category"},
	}

	for _, idx := range childIndexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.key, Value: 1}},
			Options: options.Index().SetName(idx.name),
		}
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
