package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error kinds returned in the envelope. The client displays the message
// verbatim; the kind is a stable machine-readable discriminator.
const (
	KindValidation = "validation"
	KindConflict   = "conflict"
	KindForbidden  = "forbidden"
	KindAuth       = "auth"
	KindNotFound   = "not_found"
	KindBadRequest = "bad_request"
	KindInternal   = "internal"
)

// Envelope is the uniform response body. Successful responses carry Data and
// an empty Kind; failures carry Kind and Message only.
type Envelope struct {
	Kind    string      `json:"kind,omitempty"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ── success ──

// OK writes a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Message: "success", Data: data})
}

// Created writes a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Message: "success", Data: data})
}

// CreatedMessage writes a 201 response with a human-readable message and no
// data payload (signup).
func CreatedMessage(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, Envelope{Message: message})
}

// Message writes a 200 response with a human-readable message and no data
// payload (deletes).
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Message: message})
}

// ── errors ──

// Error writes an error envelope with an explicit HTTP status.
func Error(c *gin.Context, httpStatus int, kind, message string) {
	c.JSON(httpStatus, Envelope{Kind: kind, Message: message})
}

// BadRequest writes a 400 with the given kind (validation, conflict or
// bad_request).
func BadRequest(c *gin.Context, kind, message string) {
	Error(c, http.StatusBadRequest, kind, message)
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, KindAuth, message)
}

// Forbidden writes a 403.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, KindForbidden, message)
}

// NotFound writes a 404.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, KindNotFound, message)
}

// InternalError writes a 500 without leaking the underlying error.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, KindInternal, "internal server error")
}
