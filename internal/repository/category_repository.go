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

// MongoCategoryRepository is a MongoDB implementation of CategoryRepository
type MongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoCategoryRepository{collection: db.Collection(database.CollectionCategories)}
}

// Create inserts a new category with an empty item list
func (r *MongoCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if category.ItemIDs == nil {
		category.ItemIDs = []primitive.ObjectID{}
	}

	_, err := r.collection.InsertOne(ctx, category)
	return err
}

// FindByID finds a category by ID
func (r *MongoCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByMenu lists all categories of a menu
func (r *MongoCategoryRepository) FindByMenu(ctx context.Context, menuID primitive.ObjectID) ([]models.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"menu": menuID})
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// UpdateName renames a category
func (r *MongoCategoryRepository) UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*models.Category, error) {
	update := bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category models.Category
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Delete removes the category document
func (r *MongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PushItem atomically appends an item ID to the category's item list
func (r *MongoCategoryRepository) PushItem(ctx context.Context, categoryID, itemID primitive.ObjectID) error {
	update := bson.M{
		"$push": bson.M{"items": itemID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": categoryID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PullItem atomically removes an item ID from the category's item list
func (r *MongoCategoryRepository) PullItem(ctx context.Context, categoryID, itemID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"items": itemID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": categoryID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
