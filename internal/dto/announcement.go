package dto

import "mime/multipart"

// AnnouncementRequest is decoded from the multipart create/update form; both
// operations require title and content. A nil CoverImage preserves the
// stored filename on update and yields a null coverImage on create.
type AnnouncementRequest struct {
	Title      string                `form:"title"   binding:"required"`
	Content    string                `form:"content" binding:"required"`
	CoverImage *multipart.FileHeader `form:"coverImage"`
}
