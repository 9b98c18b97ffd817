package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/saihein2480/au-connect/internal/service"
	"github.com/saihein2480/au-connect/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves spreadsheet downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportContacts downloads the contact directory as .xlsx.
// GET /api/v1/export/contacts
func (h *ExportHandler) ExportContacts(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportContacts(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoContacts):
			response.NotFound(c, "No contacts to export.")
		default:
			response.InternalError(c)
		}
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
