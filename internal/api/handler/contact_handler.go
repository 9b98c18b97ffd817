package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/service"
	"github.com/saihein2480/au-connect/pkg/response"
)

// ContactHandler serves the contact directory endpoints.
type ContactHandler struct {
	contactSvc service.ContactService
}

// NewContactHandler creates the ContactHandler.
func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// List returns every contact, newest first.
// GET /api/v1/contacts
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, contacts)
}

// Get returns a single contact. A malformed id is rejected before the
// database sees it.
// GET /api/v1/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid contact ID.")
		return
	}

	contact, err := h.contactSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.NotFound(c, "Contact not found.")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, contact)
}

// Create adds a contact from a multipart form; the picture is optional.
// POST /api/v1/contacts
func (h *ContactHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateContactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "name, faculty, role and gender are required")
		return
	}

	contact, err := h.contactSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, contact)
}

// Update rewrites a contact from a multipart form.
// PUT /api/v1/contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid contact ID.")
		return
	}

	var req dto.UpdateContactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "name is required")
		return
	}

	contact, err := h.contactSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.NotFound(c, "Contact not found.")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, contact)
}

// Delete removes a contact.
// DELETE /api/v1/contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid contact ID.")
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			response.NotFound(c, "Contact not found.")
			return
		}
		response.InternalError(c)
		return
	}
	response.Message(c, "Contact deleted successfully.")
}
