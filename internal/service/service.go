package service

import (
	"go.uber.org/zap"

	"github.com/saihein2480/au-connect/config"
	"github.com/saihein2480/au-connect/internal/repository"
	"github.com/saihein2480/au-connect/pkg/jwt"
	"github.com/saihein2480/au-connect/pkg/redis"
	"github.com/saihein2480/au-connect/pkg/storage"
)

// Service aggregates all business interfaces.
type Service struct {
	Auth         AuthService
	User         UserService
	Contact      ContactService
	Announcement AnnouncementService
	Export       ExportService
}

// New wires repositories, the credential manager and the blob store into the
// service aggregate. rdb may be nil; token revocation then becomes a no-op.
func New(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blobs storage.Store,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Contact:      NewContactService(repo, blobs, logger),
		Announcement: NewAnnouncementService(repo, blobs, logger),
		Export:       NewExportService(repo, logger),
	}
}
