package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CORS echoes back whatever Origin a browser sends rather than matching
// an allow-list — every board client is first-party, and the dispatch,
// lead, and mgmt apps are served from different origins that change
// across deployments (spec §6).
func CORS(maxAgeSeconds int) gin.HandlerFunc {
	maxAge := strconv.Itoa(maxAgeSeconds)
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "content-type,authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
