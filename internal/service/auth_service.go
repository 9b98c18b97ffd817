package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/saihein2480/au-connect/config"
	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/internal/repository"
	"github.com/saihein2480/au-connect/pkg/jwt"
	"github.com/saihein2480/au-connect/pkg/redis"
)

var (
	ErrDuplicateAccount   = errors.New("username or email already exists")
	ErrBadVerifyCode      = errors.New("invalid verification code for admin account")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles signup, login and token revocation.
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// Signup registers a new account. Nothing is persisted on any failure path:
// the uniqueness check and the admin verify-code check both run before the
// password is hashed and the row written.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (string, error) {
	if _, err := s.repo.User.GetByUsernameOrEmail(ctx, req.Username, req.Email); err == nil {
		return "", ErrDuplicateAccount
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("signup uniqueness check failed", zap.Error(err))
		return "", err
	}

	// Self-registration as admin needs the shared verify code; every other
	// requested role collapses to "user".
	role := model.RoleUser
	if req.Role == model.RoleAdmin {
		if req.VerifyCode == "" || req.VerifyCode != s.cfg.Auth.AdminVerifyCode {
			return "", ErrBadVerifyCode
		}
		role = model.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("password hash failed", zap.Error(err))
		return "", err
	}
	hashStr := string(hash)

	var studentID *string
	if req.StudentID != "" {
		studentID = &req.StudentID
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: &hashStr,
		DisplayName:  req.DisplayName,
		Faculty:      req.Faculty,
		Gender:       req.Gender,
		StudentID:    studentID,
		Role:         role,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("signup insert failed", zap.Error(err))
		return "", err
	}

	if role == model.RoleAdmin {
		return "Admin registered successfully.", nil
	}
	return "User registered successfully.", nil
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.User.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, err
	}

	if user.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtMgr.Generate(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		Role:    user.Role,
		UserID:  user.UserID,
	}, nil
}

// Logout blacklists the token's jti until it would expire anyway. Without
// redis this is a no-op and the token simply ages out.
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil || jti == "" {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

// Me returns the sanitized account of the authenticated caller.
func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("me lookup failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}
	return toUserResponse(user), nil
}
