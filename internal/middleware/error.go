// Package middleware provides the Gin middleware chain: request logging,
// error translation, and CORS.
package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SohamBhandary/MoneyFrontend/internal/errors"
	"github.com/SohamBhandary/MoneyFrontend/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors attached to the
// context into consistent JSON responses. AppErrors answer with their own
// code, message, and status; anything unclassified is logged in full and
// answered with a generic internal error so no detail leaks to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
					"request_id", RequestID(c),
				)
			}
			c.JSON(appErr.StatusCode, gin.H{
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				},
			})
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", RequestID(c),
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"error": gin.H{
				"code":    apperrors.ErrInternalServer.Code,
				"message": apperrors.ErrInternalServer.Message,
			},
		})
	}
}
