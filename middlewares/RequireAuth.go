package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoshare/helper"
)

// UserIDKey is the context key the resolved session identity is stored
// under. Handlers read it instead of touching the cookie themselves.
const UserIDKey = "userID"

// RequireAuth resolves the session cookie to a user id before any handler
// runs. Requests without a valid session are rejected with 401 and never
// reach the store.
func RequireAuth(c *gin.Context) {
	tokenString, err := c.Cookie(helper.TokenCookieName)
	if err != nil || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in to use this API"})
		return
	}

	userID, err := helper.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "you must be logged in to use this API"})
		return
	}

	c.Set(UserIDKey, userID)
	c.Next()
}
