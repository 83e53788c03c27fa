package handlers

import (
	"errors"
	"net/http"

	"github.com/babaygt/eatyq/internal/dto"
	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/babaygt/eatyq/internal/middleware"
	"github.com/babaygt/eatyq/internal/models"
	"github.com/babaygt/eatyq/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemHandler coordinates item CRUD handlers. All routes run behind the
// full ownership chain (RequireMenuOwnership + RequireCategoryInMenu).
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// CreateItem creates a new item inside the context category.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	category, ok := middleware.GetCategory(c)
	if !ok {
		apierrors.NotFound(c, "Category not found")
		return
	}

	type CreateItemRequest struct {
		Name        string             `json:"name" binding:"required"`
		Description string             `json:"description"`
		Price       *float64           `json:"price" binding:"required"`
		Currency    string             `json:"currency"`
		ImageURL    string             `json:"image_url"`
		Variations  []models.Variation `json:"variations"`
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Item name and price are required")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), category.ID, services.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Currency:    req.Currency,
		ImageURL:    req.ImageURL,
		Variations:  req.Variations,
	})
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemDTO(*item))
}

// ListItems returns all items of the context category.
func (h *ItemHandler) ListItems(c *gin.Context) {
	category, ok := middleware.GetCategory(c)
	if !ok {
		apierrors.NotFound(c, "Category not found")
		return
	}

	items, err := h.itemService.List(c.Request.Context(), category.ID)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDTOs(items))
}

// UpdateItem applies a partial update to an item of the context category.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, ok := h.resolveItem(c)
	if !ok {
		return
	}

	type UpdateItemRequest struct {
		Name        *string            `json:"name"`
		Description *string            `json:"description"`
		Price       *float64           `json:"price"`
		Currency    *string            `json:"currency"`
		ImageURL    *string            `json:"image_url"`
		Variations  []models.Variation `json:"variations"`
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.itemService.Update(c.Request.Context(), itemID, services.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		ImageURL:    req.ImageURL,
		Variations:  req.Variations,
	})
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDTO(*updated))
}

// DeleteItem removes an item of the context category. A second delete of
// the same item answers 404.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, ok := h.resolveItem(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), itemID); err != nil {
		respondItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// resolveItem parses :itemId and verifies the item belongs to the context
// category, so cross-category item ids answer 404 like any other missing
// resource.
func (h *ItemHandler) resolveItem(c *gin.Context) (primitive.ObjectID, bool) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return primitive.NilObjectID, false
	}

	category, ok := middleware.GetCategory(c)
	if !ok {
		apierrors.NotFound(c, "Category not found")
		return primitive.NilObjectID, false
	}

	item, err := h.itemService.Get(c.Request.Context(), itemID)
	if err != nil {
		respondItemError(c, err)
		return primitive.NilObjectID, false
	}

	if item.CategoryID != category.ID {
		apierrors.NotFound(c, "Item not found")
		return primitive.NilObjectID, false
	}

	return itemID, true
}

func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemNameRequired),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidItem):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		respondStoreError(c, err)
	}
}
