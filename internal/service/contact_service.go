package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/internal/repository"
	"github.com/saihein2480/au-connect/pkg/storage"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactService manages the campus contact directory.
type ContactService interface {
	List(ctx context.Context) ([]model.Contact, error)
	GetByID(ctx context.Context, id string) (*model.Contact, error)
	Create(ctx context.Context, req *dto.CreateContactRequest, createdBy string) (*model.Contact, error)
	Update(ctx context.Context, id string, req *dto.UpdateContactRequest) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	repo   *repository.Repository
	blobs  storage.Store
	logger *zap.Logger
}

// NewContactService creates the ContactService.
func NewContactService(repo *repository.Repository, blobs storage.Store, logger *zap.Logger) ContactService {
	return &contactService{repo: repo, blobs: blobs, logger: logger}
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.Contact.List(ctx)
	if err != nil {
		s.logger.Error("list contacts failed", zap.Error(err))
		return nil, err
	}
	return contacts, nil
}

func (s *contactService) GetByID(ctx context.Context, id string) (*model.Contact, error) {
	contact, err := s.repo.Contact.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		s.logger.Error("get contact failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return contact, nil
}

// Create stores the picture first, then the document, so a failed upload
// never produces a contact pointing at a missing file.
func (s *contactService) Create(ctx context.Context, req *dto.CreateContactRequest, createdBy string) (*model.Contact, error) {
	var picture *string
	if req.ProfilePicture != nil && req.ProfilePicture.Size > 0 {
		name, err := s.blobs.Save(req.ProfilePicture)
		if err != nil {
			s.logger.Error("save profile picture failed", zap.Error(err))
			return nil, err
		}
		picture = &name
	}

	contact := &model.Contact{
		Name:           req.Name,
		Faculty:        req.Faculty,
		Role:           req.Role,
		Department:     req.Department,
		Email:          req.Email,
		Phone:          req.Phone,
		Facebook:       req.Facebook,
		Line:           req.Line,
		Gender:         req.Gender,
		ProfilePicture: picture,
		CreatedBy:      createdBy,
	}

	if err := s.repo.Contact.Create(ctx, contact); err != nil {
		s.logger.Error("create contact failed", zap.Error(err))
		return nil, err
	}

	return contact, nil
}

// Update rewrites the text fields and replaces the picture only when a new
// file arrives; gender is intentionally untouched, matching the update form.
func (s *contactService) Update(ctx context.Context, id string, req *dto.UpdateContactRequest) (*model.Contact, error) {
	contact, err := s.repo.Contact.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		s.logger.Error("get contact failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.ProfilePicture != nil && req.ProfilePicture.Size > 0 {
		name, err := s.blobs.Save(req.ProfilePicture)
		if err != nil {
			s.logger.Error("save profile picture failed", zap.Error(err))
			return nil, err
		}
		contact.ProfilePicture = &name
	}

	contact.Name = req.Name
	contact.Faculty = req.Faculty
	contact.Role = req.Role
	contact.Department = req.Department
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Facebook = req.Facebook
	contact.Line = req.Line

	if err := s.repo.Contact.Update(ctx, contact); err != nil {
		s.logger.Error("update contact failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Contact.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		s.logger.Error("get contact failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Contact.Delete(ctx, id); err != nil {
		s.logger.Error("delete contact failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
