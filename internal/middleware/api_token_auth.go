package middleware

import (
	"net/http"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portssvc "github.com/SscSPs/hr_records_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries the shared service secret.
const APIKeyHeader = "x-api-key"

// APIKeyAuth gates a route group behind the shared API key.
// Rejected requests never reach the handler.
func APIKeyAuth(gate portssvc.AccessGateSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)
		req := domain.RequestContext{
			RemoteIP: c.ClientIP(),
			APIKey:   c.GetHeader(APIKeyHeader),
		}

		if err := gate.AuthorizeAPIKey(c.Request.Context(), req); err != nil {
			logger.Warn("API key rejected", "remote_ip", req.RemoteIP, "key_present", req.APIKey != "")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid or missing API key"})
			return
		}

		c.Set("authMethod", "api_key")
		c.Next()
	}
}
