package dto

import "mime/multipart"

// CreateContactRequest is decoded from the multipart create form. The
// transport shape stops here: the service only ever sees this struct.
type CreateContactRequest struct {
	Name           string                `form:"name"    binding:"required"`
	Faculty        string                `form:"faculty" binding:"required"`
	Role           string                `form:"role"    binding:"required"`
	Gender         string                `form:"gender"  binding:"required"`
	Department     string                `form:"department"`
	Email          string                `form:"email"`
	Phone          string                `form:"phone"`
	Facebook       string                `form:"facebook"`
	Line           string                `form:"line"`
	ProfilePicture *multipart.FileHeader `form:"profilePicture"`
}

// UpdateContactRequest is decoded from the multipart update form. Only name
// is mandatory; a nil ProfilePicture leaves the stored filename untouched.
// The update form never carries gender, so the struct omits it.
type UpdateContactRequest struct {
	Name           string                `form:"name" binding:"required"`
	Faculty        string                `form:"faculty"`
	Role           string                `form:"role"`
	Department     string                `form:"department"`
	Email          string                `form:"email"`
	Phone          string                `form:"phone"`
	Facebook       string                `form:"facebook"`
	Line           string                `form:"line"`
	ProfilePicture *multipart.FileHeader `form:"profilePicture"`
}
