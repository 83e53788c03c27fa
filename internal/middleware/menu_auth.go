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

// RequireMenuOwnership resolves the :menuId parameter against the session
// user. A menu that does not exist and a menu owned by someone else both
// answer 404, so the existence of foreign menus never leaks.
func RequireMenuOwnership(menus *services.MenuService) gin.HandlerFunc {
	return func(c *gin.Context) {
		menuID, err := primitive.ObjectIDFromHex(c.Param("menuId"))
		if err != nil {
			apierrors.BadRequest(c, "Invalid menu ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		menu, err := menus.Get(c.Request.Context(), userID, menuID)
		if err != nil {
			if errors.Is(err, services.ErrMenuNotFound) {
				apierrors.NotFound(c, "Menu not found")
			} else {
				apierrors.ServiceUnavailable(c, "")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyMenu, *menu)
		c.Next()
	}
}

// GetMenu retrieves the menu resolved by RequireMenuOwnership.
func GetMenu(c *gin.Context) (models.Menu, bool) {
	value, exists := c.Get(constants.ContextKeyMenu)
	if !exists {
		return models.Menu{}, false
	}
	menu, ok := value.(models.Menu)
	return menu, ok
}
