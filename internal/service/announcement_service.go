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

var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementService manages the news feed.
type AnnouncementService interface {
	List(ctx context.Context) ([]model.Announcement, error)
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Create(ctx context.Context, req *dto.AnnouncementRequest) (*model.Announcement, error)
	Update(ctx context.Context, id string, req *dto.AnnouncementRequest) (*model.Announcement, error)
	Delete(ctx context.Context, id string) error
}

type announcementService struct {
	repo   *repository.Repository
	blobs  storage.Store
	logger *zap.Logger
}

// NewAnnouncementService creates the AnnouncementService.
func NewAnnouncementService(repo *repository.Repository, blobs storage.Store, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, blobs: blobs, logger: logger}
}

// List returns every announcement, newest first.
func (s *announcementService) List(ctx context.Context) ([]model.Announcement, error) {
	items, err := s.repo.Announcement.List(ctx)
	if err != nil {
		s.logger.Error("list announcements failed", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *announcementService) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	item, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("get announcement failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *announcementService) Create(ctx context.Context, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	var cover *string
	if req.CoverImage != nil && req.CoverImage.Size > 0 {
		name, err := s.blobs.Save(req.CoverImage)
		if err != nil {
			s.logger.Error("save cover image failed", zap.Error(err))
			return nil, err
		}
		cover = &name
	}

	item := &model.Announcement{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: cover,
	}

	if err := s.repo.Announcement.Create(ctx, item); err != nil {
		s.logger.Error("create announcement failed", zap.Error(err))
		return nil, err
	}

	return item, nil
}

// Update replaces title and content; the cover is swapped only when a new
// file arrives, otherwise the stored one survives.
func (s *announcementService) Update(ctx context.Context, id string, req *dto.AnnouncementRequest) (*model.Announcement, error) {
	item, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		s.logger.Error("get announcement failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.CoverImage != nil && req.CoverImage.Size > 0 {
		name, err := s.blobs.Save(req.CoverImage)
		if err != nil {
			s.logger.Error("save cover image failed", zap.Error(err))
			return nil, err
		}
		item.CoverImage = &name
	}

	item.Title = req.Title
	item.Content = req.Content

	if err := s.repo.Announcement.Update(ctx, item); err != nil {
		s.logger.Error("update announcement failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return item, nil
}

func (s *announcementService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Announcement.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		s.logger.Error("get announcement failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		s.logger.Error("delete announcement failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
