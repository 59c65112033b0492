package middleware

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer tokens
// through the access gate and stores the token subject in the context.
func AuthMiddleware(gate portssvc.AccessGateSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		accountID, err := gate.AuthorizeBearer(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			logger.Warn("Bearer token rejected", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			return
		}

		enrichedLogger := logger.With(slog.String("account_id", accountID))
		ctx := context.WithValue(c.Request.Context(), accountIDKey, accountID)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(accountIDKey), accountID)
		c.Set(string(loggerKey), enrichedLogger)
		c.Set("authMethod", "bearer")

		c.Next()
	}
}
