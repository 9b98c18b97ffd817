package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saihein2480/au-connect/pkg/response"
)

// BodyLimit caps the request body at maxBytes. Image uploads go through
// here too, so the cap must leave room for a multipart picture.
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
				response.Error(c, http.StatusRequestEntityTooLarge, response.KindBadRequest, "request body too large")
				return
			}
		}
	}
}
