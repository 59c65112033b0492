package middleware

import "github.com/gin-gonic/gin"

// accountIDKey is the key used to store the authenticated account's ID.
const accountIDKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the authenticated account ID from the Gin context.
// It returns the account ID and a boolean indicating if it was found.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(accountIDKey)); exists {
		accountID, ok := val.(string)
		return accountID, ok
	}
	// check in the request context as well
	if val, ok := c.Request.Context().Value(accountIDKey).(string); ok {
		return val, true
	}
	return "", false
}
