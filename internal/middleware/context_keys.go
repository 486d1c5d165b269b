package middleware

import "github.com/gin-gonic/gin"

// callerIDKey is the key used to store the authenticated caller's ID in the
// request context.
const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller ID from the Gin
// context. It returns the ID and a boolean indicating if it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	callerVal := c.Request.Context().Value(callerIDKey)
	if callerVal == nil {
		return "", false
	}
	callerID, ok := callerVal.(string)
	if !ok {
		return "", false
	}
	return callerID, true
}
