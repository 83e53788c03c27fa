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
	ErrMenuNotFound     = errors.New("menu not found")
	ErrMenuNameRequired = errors.New("menu name is required")
)

// MenuService provides business logic for menu operations. Every lookup is
// scoped to the owning user, so a menu belonging to someone else is
// indistinguishable from a missing one.
type MenuService struct {
	menuRepo repository.MenuRepository
	cascade  *CascadeService
}

// NewMenuService creates a new MenuService.
func NewMenuService(menuRepo repository.MenuRepository, cascade *CascadeService) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		cascade:  cascade,
	}
}

// Create creates a new menu for the owner.
func (s *MenuService) Create(ctx context.Context, ownerID primitive.ObjectID, name string) (*models.Menu, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMenuNameRequired
	}

	menu := &models.Menu{
		UserID: ownerID,
		Name:   name,
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	return menu, nil
}

// List returns all menus belonging to the owner.
func (s *MenuService) List(ctx context.Context, ownerID primitive.ObjectID) ([]models.Menu, error) {
	menus, err := s.menuRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}
	return menus, nil
}

// Get returns a single menu owned by the caller.
func (s *MenuService) Get(ctx context.Context, ownerID, menuID primitive.ObjectID) (*models.Menu, error) {
	menu, err := s.menuRepo.FindByIDAndOwner(ctx, menuID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	return menu, nil
}

// GetPublic returns a menu without an ownership check, for the public
// read-only view.
func (s *MenuService) GetPublic(ctx context.Context, menuID primitive.ObjectID) (*models.Menu, error) {
	menu, err := s.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to find menu: %w", err)
	}
	return menu, nil
}

// Rename updates a menu's name.
func (s *MenuService) Rename(ctx context.Context, ownerID, menuID primitive.ObjectID, name string) (*models.Menu, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMenuNameRequired
	}

	menu, err := s.menuRepo.UpdateName(ctx, menuID, ownerID, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("failed to rename menu: %w", err)
	}
	return menu, nil
}

// Delete removes a menu and all of its categories and items. A second call
// for the same id reports ErrMenuNotFound.
func (s *MenuService) Delete(ctx context.Context, ownerID, menuID primitive.ObjectID) error {
	menu, err := s.menuRepo.FindByIDAndOwner(ctx, menuID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMenuNotFound
		}
		return fmt.Errorf("failed to find menu: %w", err)
	}

	if err := s.cascade.DeleteMenu(ctx, menu); err != nil {
		return err
	}
	return nil
}
