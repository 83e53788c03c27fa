package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/babaygt/eatyq/internal/models"
	"github.com/babaygt/eatyq/internal/repository"
)

// CascadeService coordinates multi-document deletes so that no descendant
// outlives its parent and every back-reference array stays consistent.
//
// The cascade is not wrapped in a cross-document transaction: children are
// removed in stored array order, child before parent, and a crash mid-way
// leaves a state from which retrying the same delete converges. Partial
// failure is surfaced to the caller as an error with nothing rolled back.
type CascadeService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
}

// NewCascadeService creates a new CascadeService.
func NewCascadeService(menuRepo repository.MenuRepository, categoryRepo repository.CategoryRepository, itemRepo repository.ItemRepository) *CascadeService {
	return &CascadeService{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// DeleteMenu removes every category of the menu (and their items), then the
// menu document itself.
func (s *CascadeService) DeleteMenu(ctx context.Context, menu *models.Menu) error {
	for _, categoryID := range menu.CategoryIDs {
		category, err := s.categoryRepo.FindByID(ctx, categoryID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				// Already gone, e.g. a previous partially-completed cascade
				continue
			}
			return fmt.Errorf("failed to load category %s: %w", categoryID.Hex(), err)
		}

		if err := s.deleteCategoryDocuments(ctx, category); err != nil {
			return err
		}
	}

	if err := s.menuRepo.Delete(ctx, menu.ID, menu.UserID); err != nil {
		return fmt.Errorf("failed to delete menu %s: %w", menu.ID.Hex(), err)
	}
	return nil
}

// DeleteCategory removes every item of the category, the category document,
// and the category's entry in its menu's back-reference array.
func (s *CascadeService) DeleteCategory(ctx context.Context, category *models.Category) error {
	if err := s.deleteCategoryDocuments(ctx, category); err != nil {
		return err
	}

	if err := s.menuRepo.PullCategory(ctx, category.MenuID, category.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to detach category %s from menu: %w", category.ID.Hex(), err)
	}
	return nil
}

// deleteCategoryDocuments deletes the category's items in stored order and
// then the category itself, without touching the parent menu.
func (s *CascadeService) deleteCategoryDocuments(ctx context.Context, category *models.Category) error {
	for _, itemID := range category.ItemIDs {
		if err := s.itemRepo.Delete(ctx, itemID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("failed to delete item %s: %w", itemID.Hex(), err)
		}
	}

	if err := s.categoryRepo.Delete(ctx, category.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to delete category %s: %w", category.ID.Hex(), err)
	}
	return nil
}
