package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups items inside a single menu. ItemIDs mirrors the set of
// Item documents whose CategoryID points here, in insertion order.
type Category struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	MenuID    primitive.ObjectID   `bson:"menu" json:"menu_id"`
	Name      string               `bson:"name" json:"name"`
	ItemIDs   []primitive.ObjectID `bson:"items" json:"item_ids"`
	CreatedAt time.Time            `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updated_at"`
}
