package dto

import (
	"time"

	"github.com/babaygt/eatyq/internal/models"
	"github.com/babaygt/eatyq/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MenuDTO represents a menu in API responses
type MenuDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryIDs []string  `json:"category_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemDTO represents an item in API responses
type ItemDTO struct {
	ID          string             `json:"id"`
	CategoryID  string             `json:"category_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       float64            `json:"price"`
	Currency    string             `json:"currency"`
	ImageURL    string             `json:"image_url,omitempty"`
	Variations  []models.Variation `json:"variations,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CategoryDTO represents a category in API responses, optionally with its
// items resolved
type CategoryDTO struct {
	ID        string    `json:"id"`
	MenuID    string    `json:"menu_id"`
	Name      string    `json:"name"`
	Items     []ItemDTO `json:"items,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicMenuDTO represents the read-only public view of a menu
type PublicMenuDTO struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Categories []CategoryDTO `json:"categories"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	}
}

// ToMenuDTO converts a Menu model to MenuDTO
func ToMenuDTO(menu models.Menu) MenuDTO {
	categoryIDs := make([]string, len(menu.CategoryIDs))
	for i, id := range menu.CategoryIDs {
		categoryIDs[i] = id.Hex()
	}

	return MenuDTO{
		ID:          menu.ID.Hex(),
		Name:        menu.Name,
		CategoryIDs: categoryIDs,
		CreatedAt:   menu.CreatedAt,
		UpdatedAt:   menu.UpdatedAt,
	}
}

// ToMenuDTOs converts a slice of menus
func ToMenuDTOs(menus []models.Menu) []MenuDTO {
	dtos := make([]MenuDTO, len(menus))
	for i, menu := range menus {
		dtos[i] = ToMenuDTO(menu)
	}
	return dtos
}

// ToItemDTO converts an Item model to ItemDTO
func ToItemDTO(item models.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID.Hex(),
		CategoryID:  item.CategoryID.Hex(),
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Currency:    item.Currency,
		ImageURL:    item.ImageURL,
		Variations:  item.Variations,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToItemDTOs converts a slice of items
func ToItemDTOs(items []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToItemDTO(item)
	}
	return dtos
}

// ToCategoryDTO converts a Category model to CategoryDTO without items
func ToCategoryDTO(category models.Category) CategoryDTO {
	return CategoryDTO{
		ID:        category.ID.Hex(),
		MenuID:    category.MenuID.Hex(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryWithItemsDTO converts a category together with its resolved items
func ToCategoryWithItemsDTO(cwi services.CategoryWithItems) CategoryDTO {
	dto := ToCategoryDTO(cwi.Category)
	dto.Items = ToItemDTOs(cwi.Items)
	return dto
}

// ToPublicMenuDTO builds the public read-only menu view
func ToPublicMenuDTO(menu models.Menu, categories []services.CategoryWithItems) PublicMenuDTO {
	categoryDTOs := make([]CategoryDTO, len(categories))
	for i, cwi := range categories {
		categoryDTOs[i] = ToCategoryWithItemsDTO(cwi)
	}

	return PublicMenuDTO{
		ID:         menu.ID.Hex(),
		Name:       menu.Name,
		Categories: categoryDTOs,
	}
}
