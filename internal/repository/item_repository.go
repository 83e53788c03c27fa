package repository

import (
	"context"
	"errors"
	"time"

	"github.com/babaygt/eatyq/internal/database"
	"github.com/babaygt/eatyq/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoItemRepository is a MongoDB implementation of ItemRepository
type MongoItemRepository struct {
	collection *mongo.Collection
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *mongo.Database) ItemRepository {
	return &MongoItemRepository{collection: db.Collection(database.CollectionItems)}
}

// Create inserts a new item
func (r *MongoItemRepository) Create(ctx context.Context, item *models.Item) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, item)
	return err
}

// FindByID finds an item by ID
func (r *MongoItemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error) {
	var item models.Item
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCategory lists all items of a category
func (r *MongoItemRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Item, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category": categoryID})
	if err != nil {
		return nil, err
	}

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies a partial update and returns the updated item. Only fields
// present in the update are touched; the category pointer never changes.
func (r *MongoItemRepository) Update(ctx context.Context, id primitive.ObjectID, update ItemUpdate) (*models.Item, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Currency != nil {
		set["currency"] = *update.Currency
	}
	if update.ImageURL != nil {
		set["imageUrl"] = *update.ImageURL
	}
	if update.Variations != nil {
		set["variations"] = update.Variations
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.Item
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Delete removes the item document
func (r *MongoItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
