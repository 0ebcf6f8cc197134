package handler

import (
	"github.com/gin-gonic/gin"

	"hubdispatch/backend/internal/token"
	"hubdispatch/backend/pkg/response"
)

// mustGetClaims safely extracts the token.Claims stashed by the auth
// middleware. Callers should return immediately when ok is false — a
// 401 response has already been written.
func mustGetClaims(c *gin.Context) (token.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.FailWith(c, 401, "Not authenticated.")
		return token.Claims{}, false
	}
	claims, ok := v.(token.Claims)
	if !ok {
		response.FailWith(c, 401, "Not authenticated.")
		return token.Claims{}, false
	}
	return claims, true
}
