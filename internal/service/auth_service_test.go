package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/saihein2480/au-connect/config"
	"github.com/saihein2480/au-connect/internal/dto"
	"github.com/saihein2480/au-connect/internal/model"
	"github.com/saihein2480/au-connect/pkg/jwt"
)

func setupTestAuthService() (AuthService, *mockUserRepo) {
	repo, users, _, _ := newTestRepo()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-16",
			TokenTTL:        time.Hour,
			AdminVerifyCode: "letmein",
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, users
}

func createTestUser(users *mockUserRepo, username, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hashStr := string(hash)
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: &hashStr,
		Role:         model.RoleUser,
	}
	_ = users.Create(context.Background(), user)
	return user
}

func TestSignup_Success(t *testing.T) {
	svc, users := setupTestAuthService()

	msg, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Signup should succeed, got: %v", err)
	}
	if msg != "User registered successfully." {
		t.Errorf("unexpected message: %q", msg)
	}

	stored, err := users.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.Role != model.RoleUser {
		t.Errorf("expected role user, got %s", stored.Role)
	}
	if stored.PasswordHash == nil || *stored.PasswordHash == "secret123" {
		t.Error("password must be stored hashed")
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc, users := setupTestAuthService()
	createTestUser(users, "alice", "secret123")

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("expected ErrDuplicateAccount, got: %v", err)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, users := setupTestAuthService()
	createTestUser(users, "alice", "secret123")

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("expected ErrDuplicateAccount, got: %v", err)
	}
}

func TestSignup_AdminWithCode(t *testing.T) {
	svc, users := setupTestAuthService()

	msg, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:   "root",
		Email:      "root@example.com",
		Password:   "secret123",
		Role:       model.RoleAdmin,
		VerifyCode: "letmein",
	})
	if err != nil {
		t.Fatalf("Signup should succeed, got: %v", err)
	}
	if msg != "Admin registered successfully." {
		t.Errorf("unexpected message: %q", msg)
	}

	stored, _ := users.GetByUsername(context.Background(), "root")
	if stored.Role != model.RoleAdmin {
		t.Errorf("expected role admin, got %s", stored.Role)
	}
}

func TestSignup_AdminWrongCode(t *testing.T) {
	svc, users := setupTestAuthService()

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username:   "root",
		Email:      "root@example.com",
		Password:   "secret123",
		Role:       model.RoleAdmin,
		VerifyCode: "wrong",
	})
	if !errors.Is(err, ErrBadVerifyCode) {
		t.Errorf("expected ErrBadVerifyCode, got: %v", err)
	}

	// Nothing may be persisted on the failure path.
	if _, err := users.GetByUsername(context.Background(), "root"); err == nil {
		t.Error("rejected signup must not persist an account")
	}
}

func TestSignup_UnknownRoleCollapsesToUser(t *testing.T) {
	svc, users := setupTestAuthService()

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "eve",
		Email:    "eve@example.com",
		Password: "secret123",
		Role:     "superuser",
	})
	if err != nil {
		t.Fatalf("Signup should succeed, got: %v", err)
	}

	stored, _ := users.GetByUsername(context.Background(), "eve")
	if stored.Role != model.RoleUser {
		t.Errorf("expected role user, got %s", stored.Role)
	}
}

func TestLogin_Success(t *testing.T) {
	svc, users := setupTestAuthService()
	created := createTestUser(users, "alice", "secret123")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login should succeed, got: %v", err)
	}
	if !result.Success {
		t.Error("Success should be true")
	}
	if result.Token == "" {
		t.Error("Token should not be empty")
	}
	if result.Role != model.RoleUser {
		t.Errorf("expected role user, got %s", result.Role)
	}
	if result.UserID != created.UserID {
		t.Errorf("expected userId %s, got %s", created.UserID, result.UserID)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users := setupTestAuthService()
	createTestUser(users, "alice", "secret123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogin_NoPasswordHash(t *testing.T) {
	svc, users := setupTestAuthService()
	_ = users.Create(context.Background(), &model.User{
		Username: "ghost",
		Email:    "ghost@example.com",
		Role:     model.RoleUser,
	})

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "anything",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLogout_NoRedisIsNoop(t *testing.T) {
	svc, _ := setupTestAuthService()

	if err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Logout without redis should be a no-op, got: %v", err)
	}
}

func TestMe_StripsCredentials(t *testing.T) {
	svc, users := setupTestAuthService()
	created := createTestUser(users, "alice", "secret123")

	resp, err := svc.Me(context.Background(), created.UserID)
	if err != nil {
		t.Fatalf("Me should succeed, got: %v", err)
	}
	if resp.Username != "alice" {
		t.Errorf("expected username alice, got %s", resp.Username)
	}
	if resp.ID != created.UserID {
		t.Errorf("expected id %s, got %s", created.UserID, resp.ID)
	}
}

func TestMe_Unknown(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Me(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}
