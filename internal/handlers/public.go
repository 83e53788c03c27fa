package handlers

import (
	"errors"
	"net/http"

	"github.com/babaygt/eatyq/internal/dto"
	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/babaygt/eatyq/internal/services"
	"github.com/babaygt/eatyq/internal/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicHandler serves the unauthenticated read-only menu view a guest
// reaches by scanning the menu's QR code.
type PublicHandler struct {
	menuService     *services.MenuService
	categoryService *services.CategoryService
	publicBaseURL   string
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(menuService *services.MenuService, categoryService *services.CategoryService, publicBaseURL string) *PublicHandler {
	return &PublicHandler{
		menuService:     menuService,
		categoryService: categoryService,
		publicBaseURL:   publicBaseURL,
	}
}

// GetPublicMenu returns a menu with all categories and items resolved, with
// no ownership check.
func (h *PublicHandler) GetPublicMenu(c *gin.Context) {
	menuID, err := primitive.ObjectIDFromHex(c.Param("menuId"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid menu ID")
		return
	}

	menu, err := h.menuService.GetPublic(c.Request.Context(), menuID)
	if err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			apierrors.NotFound(c, "Menu not found")
			return
		}
		respondStoreError(c, err)
		return
	}

	categories, err := h.categoryService.ListWithItems(c.Request.Context(), menu.ID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicMenuDTO(*menu, categories))
}

// GetMenuQR returns a PNG QR code pointing at the menu's public view.
func (h *PublicHandler) GetMenuQR(c *gin.Context) {
	menuID, err := primitive.ObjectIDFromHex(c.Param("menuId"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid menu ID")
		return
	}

	// Only encode QR codes for menus that exist
	menu, err := h.menuService.GetPublic(c.Request.Context(), menuID)
	if err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			apierrors.NotFound(c, "Menu not found")
			return
		}
		respondStoreError(c, err)
		return
	}

	png, err := utils.GenerateMenuQR(h.publicBaseURL, menu.ID.Hex())
	if err != nil {
		apierrors.InternalError(c, "Failed to generate QR code")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
