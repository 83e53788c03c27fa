package handlers

import (
	"errors"
	"net/http"

	"github.com/babaygt/eatyq/internal/dto"
	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/babaygt/eatyq/internal/middleware"
	"github.com/babaygt/eatyq/internal/services"
	"github.com/gin-gonic/gin"
)

// CategoryHandler coordinates category CRUD handlers. All routes run behind
// RequireMenuOwnership; category-scoped routes additionally run behind
// RequireCategoryInMenu.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory creates a new category inside the context menu.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	menu, ok := middleware.GetMenu(c)
	if !ok {
		apierrors.NotFound(c, "Menu not found")
		return
	}

	type CreateCategoryRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Category name is required")
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), menu.ID, req.Name)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryDTO(*category))
}

// ListCategories returns the menu's categories with their items resolved.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	menu, ok := middleware.GetMenu(c)
	if !ok {
		apierrors.NotFound(c, "Menu not found")
		return
	}

	categories, err := h.categoryService.ListWithItems(c.Request.Context(), menu.ID)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	dtos := make([]dto.CategoryDTO, len(categories))
	for i, cwi := range categories {
		dtos[i] = dto.ToCategoryWithItemsDTO(cwi)
	}

	c.JSON(http.StatusOK, dtos)
}

// UpdateCategory renames the context category.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	category, ok := middleware.GetCategory(c)
	if !ok {
		apierrors.NotFound(c, "Category not found")
		return
	}

	type UpdateCategoryRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Category name is required")
		return
	}

	updated, err := h.categoryService.Rename(c.Request.Context(), category.ID, req.Name)
	if err != nil {
		respondCategoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTO(*updated))
}

// DeleteCategory removes the context category, its items, and the menu's
// back-reference.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	category, ok := middleware.GetCategory(c)
	if !ok {
		apierrors.NotFound(c, "Category not found")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), category.ID); err != nil {
		respondCategoryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondCategoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCategoryNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrMenuNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		respondStoreError(c, err)
	}
}
