package handler

import "github.com/saihein2480/au-connect/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Contact      *ContactHandler
	Announcement *AnnouncementHandler
	Export       *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Profile:      NewProfileHandler(svc.User),
		Contact:      NewContactHandler(svc.Contact),
		Announcement: NewAnnouncementHandler(svc.Announcement),
		Export:       NewExportHandler(svc.Export),
	}
}
