package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saihein2480/au-connect/pkg/redis"
	"github.com/saihein2480/au-connect/pkg/response"
)

// RateLimit throttles a route per client IP using a redis fixed window.
// When rdb is nil or redis errors, requests pass through.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, response.KindBadRequest, "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
