package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/service"
	"github.com/saihein2480/au-connect/pkg/response"
)

// AnnouncementHandler serves the news feed endpoints.
type AnnouncementHandler struct {
	annSvc service.AnnouncementService
}

// NewAnnouncementHandler creates the AnnouncementHandler.
func NewAnnouncementHandler(annSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{annSvc: annSvc}
}

// List returns every announcement, newest first.
// GET /api/v1/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	items, err := h.annSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, items)
}

// Get returns a single announcement.
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid announcement ID.")
		return
	}

	item, err := h.annSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, "Announcement not found.")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, item)
}

// Create adds an announcement from a multipart form; the cover is optional.
// POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.AnnouncementRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "title and content are required")
		return
	}

	item, err := h.annSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, item)
}

// Update rewrites an announcement from a multipart form.
// PUT /api/v1/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid announcement ID.")
		return
	}

	var req dto.AnnouncementRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "title and content are required")
		return
	}

	item, err := h.annSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, "Announcement not found.")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, item)
}

// Delete removes an announcement.
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid announcement ID.")
		return
	}

	if err := h.annSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAnnouncementNotFound) {
			response.NotFound(c, "Announcement not found.")
			return
		}
		response.InternalError(c)
		return
	}
	response.Message(c, "Announcement deleted successfully.")
}
