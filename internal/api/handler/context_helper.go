package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saihein2480/au-connect/pkg/response"
)

// MustGetUserID extracts user_id from the gin context. When the JWT
// middleware did not inject it, a 401 is written and ok is false; the caller
// should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts role from the gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "not authenticated")
		return "", false
	}
	return s, true
}

// tokenMeta extracts the token id and expiry the JWT middleware stashed for
// logout. Missing values come back zero; logout degrades to a no-op then.
func tokenMeta(c *gin.Context) (string, time.Time) {
	jti, _ := c.Get("jti")
	exp, _ := c.Get("token_expires_at")
	jtiStr, _ := jti.(string)
	expTime, _ := exp.(time.Time)
	return jtiStr, expTime
}
