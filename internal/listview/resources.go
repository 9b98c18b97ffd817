package listview

import (
	"context"

	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/pkg/client"
)

// NewContactList builds the directory page controller. Search spans the
// fields the directory UI exposes.
func NewContactList(api *client.Client) *Controller[model.Contact] {
	return New(
		func(ctx context.Context) ([]model.Contact, error) {
			return api.ListContacts(ctx)
		},
		map[string]Field[model.Contact]{
			"name":       func(c model.Contact) string { return c.Name },
			"faculty":    func(c model.Contact) string { return c.Faculty },
			"role":       func(c model.Contact) string { return c.Role },
			"department": func(c model.Contact) string { return c.Department },
			"email":      func(c model.Contact) string { return c.Email },
		},
	)
}

// NewAnnouncementList builds the feed page controller.
func NewAnnouncementList(api *client.Client) *Controller[model.Announcement] {
	return New(
		func(ctx context.Context) ([]model.Announcement, error) {
			return api.ListAnnouncements(ctx)
		},
		map[string]Field[model.Announcement]{
			"title":   func(a model.Announcement) string { return a.Title },
			"content": func(a model.Announcement) string { return a.Content },
		},
	)
}

// NewProfileList builds the account admin page controller.
func NewProfileList(api *client.Client) *Controller[dto.UserResponse] {
	return New(
		func(ctx context.Context) ([]dto.UserResponse, error) {
			return api.ListProfiles(ctx)
		},
		map[string]Field[dto.UserResponse]{
			"username": func(u dto.UserResponse) string { return u.Username },
			"email":    func(u dto.UserResponse) string { return u.Email },
			"faculty":  func(u dto.UserResponse) string { return u.Faculty },
			"role":     func(u dto.UserResponse) string { return u.Role },
		},
	)
}
