package middleware

import (
	"errors"

	"github.com/babaygt/eatyq/internal/constants"
	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/babaygt/eatyq/internal/models"
	"github.com/babaygt/eatyq/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequireCategoryInMenu resolves the :categoryId parameter and verifies the
// category belongs to the menu already proven by RequireMenuOwnership,
// completing the ownership chain for category and item operations. A
// category under someone else's menu answers 404.
func RequireCategoryInMenu(categories *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
		if err != nil {
			apierrors.BadRequest(c, "Invalid category ID")
			c.Abort()
			return
		}

		menu, ok := GetMenu(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		category, err := categories.Get(c.Request.Context(), categoryID)
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				apierrors.NotFound(c, "Category not found")
			} else {
				apierrors.ServiceUnavailable(c, "")
			}
			c.Abort()
			return
		}

		if category.MenuID != menu.ID {
			apierrors.NotFound(c, "Category not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCategory, *category)
		c.Next()
	}
}

// GetCategory retrieves the category resolved by RequireCategoryInMenu.
func GetCategory(c *gin.Context) (models.Category, bool) {
	value, exists := c.Get(constants.ContextKeyCategory)
	if !exists {
		return models.Category{}, false
	}
	category, ok := value.(models.Category)
	return category, ok
}
