package middleware

import (
	"github.com/babaygt/eatyq/internal/constants"
	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context. The session stores
// the ID as its 24-hex string form, since ObjectID does not gob-encode.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return primitive.NilObjectID, false
	}

	hex, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
