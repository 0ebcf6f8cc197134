package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hubdispatch/backend/pkg/response"
)

// BodyLimit caps the request body at maxBytes, rejecting anything larger
// with a 413 before a handler ever sees it.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, err := range c.Errors {
			if err.Err != nil && err.Err.Error() == "http: request body too large" {
				response.FailWith(c, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
		}
	}
}
