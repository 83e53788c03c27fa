package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/babaygt/eatyq/internal/models"
	"github.com/babaygt/eatyq/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameRequired = errors.New("category name is required")
)

// CategoryService provides business logic for category operations. Callers
// are expected to have proven ownership of the parent menu before invoking
// mutating operations; the service still verifies the menu exists so a
// category can never be attached to a dangling parent.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	menuRepo     repository.MenuRepository
	itemRepo     repository.ItemRepository
	cascade      *CascadeService
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, menuRepo repository.MenuRepository, itemRepo repository.ItemRepository, cascade *CascadeService) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		menuRepo:     menuRepo,
		itemRepo:     itemRepo,
		cascade:      cascade,
	}
}

// Create persists a new category and registers it in the menu's category
// list with an atomic append.
func (s *CategoryService) Create(ctx context.Context, menuID primitive.ObjectID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	if _, err := s.menuRepo.FindByID(ctx, menuID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to verify menu: %w", err)
	}

	category := &models.Category{
		MenuID: menuID,
		Name:   name,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if err := s.menuRepo.PushCategory(ctx, menuID, category.ID); err != nil {
		return nil, fmt.Errorf("failed to register category in menu: %w", err)
	}

	return category, nil
}

// CategoryWithItems pairs a category with its resolved item list.
type CategoryWithItems struct {
	Category models.Category
	Items    []models.Item
}

// ListWithItems returns the menu's categories with their items resolved, the
// read-time equivalent of a populate.
func (s *CategoryService) ListWithItems(ctx context.Context, menuID primitive.ObjectID) ([]CategoryWithItems, error) {
	categories, err := s.categoryRepo.FindByMenu(ctx, menuID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]CategoryWithItems, 0, len(categories))
	for _, category := range categories {
		items, err := s.itemRepo.FindByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load items for category %s: %w", category.ID.Hex(), err)
		}
		result = append(result, CategoryWithItems{Category: category, Items: items})
	}
	return result, nil
}

// Get returns a single category.
func (s *CategoryService) Get(ctx context.Context, categoryID primitive.ObjectID) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// Rename updates a category's name.
func (s *CategoryService) Rename(ctx context.Context, categoryID primitive.ObjectID, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category, err := s.categoryRepo.UpdateName(ctx, categoryID, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}
	return category, nil
}

// Delete removes a category, its items, and the menu's back-reference.
// Deleting a category that no longer exists reports ErrCategoryNotFound; a
// re-delete is never a silent success.
func (s *CategoryService) Delete(ctx context.Context, categoryID primitive.ObjectID) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to find category: %w", err)
	}

	return s.cascade.DeleteCategory(ctx, category)
}
