package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Variation is a named serving of an item with an optional price override.
type Variation struct {
	Name  string   `bson:"name" json:"name" validate:"required"`
	Price *float64 `bson:"price,omitempty" json:"price,omitempty" validate:"omitempty,min=0"`
}

type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryID  primitive.ObjectID `bson:"category" json:"category_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Currency    string             `bson:"currency" json:"currency"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"image_url,omitempty"`
	Variations  []Variation        `bson:"variations,omitempty" json:"variations,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}
