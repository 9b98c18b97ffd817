package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/service"
	"github.com/saihein2480/au-connect/pkg/response"
)

// ProfileHandler serves the account CRUD endpoints.
type ProfileHandler struct {
	userSvc service.UserService
}

// NewProfileHandler creates the ProfileHandler.
func NewProfileHandler(userSvc service.UserService) *ProfileHandler {
	return &ProfileHandler{userSvc: userSvc}
}

// List returns every account, newest first.
// GET /api/v1/profile
func (h *ProfileHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, users)
}

// Get returns a single account. Unknown and malformed ids both read as 404
// here; the row simply is not there.
// GET /api/v1/profile/:id
func (h *ProfileHandler) Get(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found.")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, user)
}

// Create adds an account with an explicit role.
// POST /api/v1/profile
func (h *ProfileHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "username, email, password and role are required")
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAccount) {
			response.BadRequest(c, response.KindConflict, "Username or email already exists.")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// Update rewrites an account. Admins may edit anyone; everyone else only
// themselves, and never their role.
// PUT /api/v1/profile/:id
func (h *ProfileHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	callerRole, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "username, email and role are required")
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID, callerRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, "User not found.")
		case errors.Is(err, service.ErrNoPermission):
			response.Forbidden(c, "You may only edit your own profile.")
		case errors.Is(err, service.ErrDuplicateAccount):
			response.BadRequest(c, response.KindConflict, "Username or email already exists.")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, user)
}

// Delete removes an account.
// DELETE /api/v1/profile/:id
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found.")
			return
		}
		response.InternalError(c)
		return
	}
	response.Message(c, "User deleted successfully.")
}
