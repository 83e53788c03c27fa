package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu is the top-level entity of a user's digital menu. CategoryIDs is a
// denormalized cache of the child set: it must always equal the set of
// Category documents whose MenuID points here. It is only ever changed
// through atomic $push/$pull updates.
type Menu struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID   `bson:"user" json:"user_id"`
	Name        string               `bson:"name" json:"name"`
	CategoryIDs []primitive.ObjectID `bson:"categories" json:"category_ids"`
	CreatedAt   time.Time            `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updated_at"`
}
