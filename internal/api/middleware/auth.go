package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/token"
	"hubdispatch/backend/pkg/response"
)

const claimsKey = "claims"

// Auth parses the Authorization: Bearer <token> header, verifies it, and
// stashes the resulting token.Claims in the gin context for handlers and
// RequireApp to read (spec §4.8).
func Auth(tokenMgr *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWith(c, 401, "Missing Authorization header.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.FailWith(c, 401, "Malformed Authorization header.")
			c.Abort()
			return
		}

		claims, err := tokenMgr.Verify(parts[1])
		if err != nil {
			switch {
			case errors.Is(err, token.ErrExpired):
				response.FailWith(c, 401, "Session expired. Please login again.")
			default:
				response.FailWith(c, 401, "Invalid session.")
			}
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireApp aborts with 403 unless the authenticated caller's role has
// access to the named app scope (spec §4.8).
func RequireApp(app token.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(claimsKey).(token.Claims)
		if !ok || !token.HasAccess(claims.Role, app) {
			response.FailWith(c, 403, "No access to "+string(app)+".")
			c.Abort()
			return
		}
		c.Next()
	}
}
