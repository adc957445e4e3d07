package mockhr

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"staffdesk.com/staffdesk/security"
)

// Authentication checks for a valid Bearer token signed with the server's
// secret and stores the claims in the request context.
func Authentication(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("missing bearer token"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("malformed authorization header"))
			return
		}

		claims, err := security.ParseSessionToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
