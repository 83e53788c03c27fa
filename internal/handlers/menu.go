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

// MenuHandler coordinates menu CRUD handlers. Routes below the collection
// level run behind RequireMenuOwnership, so the menu in the context is
// always owned by the session user.
type MenuHandler struct {
	menuService *services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// CreateMenu creates a new menu for the authenticated user.
func (h *MenuHandler) CreateMenu(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateMenuRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name is required")
		return
	}

	menu, err := h.menuService.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMenuDTO(*menu))
}

// ListMenus returns all menus of the authenticated user.
func (h *MenuHandler) ListMenus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	menus, err := h.menuService.List(c.Request.Context(), userID)
	if err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuDTOs(menus))
}

// GetMenu returns the menu resolved by the ownership middleware.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	menu, ok := middleware.GetMenu(c)
	if !ok {
		apierrors.NotFound(c, "Menu not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuDTO(menu))
}

// UpdateMenu renames a menu.
func (h *MenuHandler) UpdateMenu(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	menu, ok := middleware.GetMenu(c)
	if !ok {
		apierrors.NotFound(c, "Menu not found")
		return
	}

	type UpdateMenuRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name is required")
		return
	}

	updated, err := h.menuService.Rename(c.Request.Context(), userID, menu.ID, req.Name)
	if err != nil {
		respondMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMenuDTO(*updated))
}

// DeleteMenu removes a menu and cascades to its categories and items.
func (h *MenuHandler) DeleteMenu(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	menu, ok := middleware.GetMenu(c)
	if !ok {
		apierrors.NotFound(c, "Menu not found")
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), userID, menu.ID); err != nil {
		respondMenuError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMenuNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		respondStoreError(c, err)
	}
}
