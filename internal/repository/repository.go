package repository

import (
	"context"
	"errors"

	"github.com/babaygt/eatyq/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when a document does not exist, or when an
	// ownership-scoped query does not match. Callers cannot tell the two
	// apart, which keeps foreign resources invisible.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateUsername and ErrDuplicateEmail report which unique field
	// collided on user creation.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user; duplicate username/email surface as
	// ErrDuplicateUsername / ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// MenuRepository defines the interface for menu data access. Every
// owner-scoped method folds the owner into the query filter so a foreign
// menu behaves exactly like a missing one.
type MenuRepository interface {
	// Create inserts a new menu with an empty category list
	Create(ctx context.Context, menu *models.Menu) error

	// FindByOwner lists all menus belonging to the owner in insertion order
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Menu, error)

	// FindByIDAndOwner finds a menu by ID scoped to its owner
	FindByIDAndOwner(ctx context.Context, id, ownerID primitive.ObjectID) (*models.Menu, error)

	// FindByID finds a menu by ID without an ownership check (public view)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Menu, error)

	// UpdateName renames a menu scoped to its owner
	UpdateName(ctx context.Context, id, ownerID primitive.ObjectID, name string) (*models.Menu, error)

	// Delete removes the menu document scoped to its owner
	Delete(ctx context.Context, id, ownerID primitive.ObjectID) error

	// PushCategory atomically appends a category ID to the menu's
	// back-reference array
	PushCategory(ctx context.Context, menuID, categoryID primitive.ObjectID) error

	// PullCategory atomically removes a category ID from the menu's
	// back-reference array
	PullCategory(ctx context.Context, menuID, categoryID primitive.ObjectID) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create inserts a new category with an empty item list
	Create(ctx context.Context, category *models.Category) error

	// FindByID finds a category by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)

	// FindByMenu lists all categories of a menu in insertion order
	FindByMenu(ctx context.Context, menuID primitive.ObjectID) ([]models.Category, error)

	// UpdateName renames a category
	UpdateName(ctx context.Context, id primitive.ObjectID, name string) (*models.Category, error)

	// Delete removes the category document
	Delete(ctx context.Context, id primitive.ObjectID) error

	// PushItem atomically appends an item ID to the category's
	// back-reference array
	PushItem(ctx context.Context, categoryID, itemID primitive.ObjectID) error

	// PullItem atomically removes an item ID from the category's
	// back-reference array
	PullItem(ctx context.Context, categoryID, itemID primitive.ObjectID) error
}

// ItemUpdate holds the mutable item fields for a partial update. Nil fields
// are left untouched; parentage is never updatable.
type ItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Currency    *string
	ImageURL    *string
	Variations  []models.Variation
}

// ItemRepository defines the interface for item data access
type ItemRepository interface {
	// Create inserts a new item
	Create(ctx context.Context, item *models.Item) error

	// FindByID finds an item by ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Item, error)

	// FindByCategory lists all items of a category in insertion order
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Item, error)

	// Update applies a partial update and returns the updated item
	Update(ctx context.Context, id primitive.ObjectID, update ItemUpdate) (*models.Item, error)

	// Delete removes the item document
	Delete(ctx context.Context, id primitive.ObjectID) error
}
