package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/babaygt/eatyq/internal/constants"
	"github.com/babaygt/eatyq/internal/models"
	"github.com/babaygt/eatyq/internal/repository"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrItemNameRequired = errors.New("item name is required")
	ErrInvalidPrice     = errors.New("price must be a non-negative number")
	ErrInvalidItem      = errors.New("invalid item payload")
)

var validate = validator.New()

// ItemService provides business logic for item operations.
type ItemService struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateItemInput represents input for creating an item.
type CreateItemInput struct {
	Name        string             `validate:"required"`
	Description string             `validate:"omitempty,max=1000"`
	Price       float64            `validate:"min=0"`
	Currency    string             `validate:"omitempty,max=10"`
	ImageURL    string             `validate:"omitempty,url"`
	Variations  []models.Variation `validate:"omitempty,dive"`
}

// UpdateItemInput represents a partial update; nil fields are untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	Currency    *string
	ImageURL    *string
	Variations  []models.Variation
}

// Create persists a new item under the category and registers it in the
// category's item list with an atomic append.
func (s *ItemService) Create(ctx context.Context, categoryID primitive.ObjectID, input CreateItemInput) (*models.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrItemNameRequired
	}
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	currency := input.Currency
	if currency == "" {
		currency = constants.DefaultCurrency
	}

	item := &models.Item{
		CategoryID:  categoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		ImageURL:    input.ImageURL,
		Variations:  input.Variations,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	if err := s.categoryRepo.PushItem(ctx, categoryID, item.ID); err != nil {
		return nil, fmt.Errorf("failed to register item in category: %w", err)
	}

	return item, nil
}

// List returns all items of the category.
func (s *ItemService) List(ctx context.Context, categoryID primitive.ObjectID) ([]models.Item, error) {
	items, err := s.itemRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Get returns a single item.
func (s *ItemService) Get(ctx context.Context, itemID primitive.ObjectID) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// Update applies a partial update. Parentage never changes.
func (s *ItemService) Update(ctx context.Context, itemID primitive.ObjectID, input UpdateItemInput) (*models.Item, error) {
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, ErrItemNameRequired
		}
		input.Name = &trimmed
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	for _, v := range input.Variations {
		if strings.TrimSpace(v.Name) == "" {
			return nil, ErrItemNameRequired
		}
		if v.Price != nil && *v.Price < 0 {
			return nil, ErrInvalidPrice
		}
	}

	item, err := s.itemRepo.Update(ctx, itemID, repository.ItemUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Currency:    input.Currency,
		ImageURL:    input.ImageURL,
		Variations:  input.Variations,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return item, nil
}

// Delete removes the item and its back-reference in the category. An item
// that is already gone reports ErrItemNotFound, matching the category
// deletion policy.
func (s *ItemService) Delete(ctx context.Context, itemID primitive.ObjectID) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to find item: %w", err)
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete item: %w", err)
	}

	if err := s.categoryRepo.PullItem(ctx, item.CategoryID, itemID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to detach item from category: %w", err)
	}
	return nil
}
