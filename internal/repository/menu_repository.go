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

// MongoMenuRepository is a MongoDB implementation of MenuRepository
type MongoMenuRepository struct {
	collection *mongo.Collection
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db *mongo.Database) MenuRepository {
	return &MongoMenuRepository{collection: db.Collection(database.CollectionMenus)}
}

// Create inserts a new menu with an empty category list
func (r *MongoMenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	now := time.Now().UTC()
	menu.CreatedAt = now
	menu.UpdatedAt = now
	if menu.ID.IsZero() {
		menu.ID = primitive.NewObjectID()
	}
	if menu.CategoryIDs == nil {
		menu.CategoryIDs = []primitive.ObjectID{}
	}

	_, err := r.collection.InsertOne(ctx, menu)
	return err
}

// FindByOwner lists all menus belonging to the owner
func (r *MongoMenuRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Menu, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user": ownerID})
	if err != nil {
		return nil, err
	}

	menus := []models.Menu{}
	if err := cursor.All(ctx, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

// FindByIDAndOwner finds a menu by ID scoped to its owner
func (r *MongoMenuRepository) FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Menu, error) {
	return r.findOne(ctx, bson.M{"_id": id, "user": ownerID})
}

// FindByID finds a menu by ID without an ownership check
func (r *MongoMenuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Menu, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// UpdateName renames a menu scoped to its owner
func (r *MongoMenuRepository) UpdateName(ctx context.Context, id, ownerID primitive.ObjectID, name string) (*models.Menu, error) {
	update := bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var menu models.Menu
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id, "user": ownerID}, update, opts).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}

// Delete removes the menu document scoped to its owner
func (r *MongoMenuRepository) Delete(ctx context.Context, id, ownerID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user": ownerID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PushCategory atomically appends a category ID to the menu's category list.
// $push keeps concurrent sibling creations from losing each other's
// registration, which a read-modify-write would.
func (r *MongoMenuRepository) PushCategory(ctx context.Context, menuID, categoryID primitive.ObjectID) error {
	update := bson.M{
		"$push": bson.M{"categories": categoryID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": menuID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PullCategory atomically removes a category ID from the menu's category list
func (r *MongoMenuRepository) PullCategory(ctx context.Context, menuID, categoryID primitive.ObjectID) error {
	update := bson.M{
		"$pull": bson.M{"categories": categoryID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": menuID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMenuRepository) findOne(ctx context.Context, filter bson.M) (*models.Menu, error) {
	var menu models.Menu
	err := r.collection.FindOne(ctx, filter).Decode(&menu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &menu, nil
}
