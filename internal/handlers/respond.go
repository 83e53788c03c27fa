package handlers

import (
	"context"
	"errors"

	apierrors "github.com/babaygt/eatyq/internal/errors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// respondStoreError maps an unexpected service error to a response. Store
// timeouts and unreachable-server errors are retryable and answer 503;
// anything else is a plain 500.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		apierrors.ServiceUnavailable(c, "")
		return
	}
	apierrors.InternalError(c, "")
}
