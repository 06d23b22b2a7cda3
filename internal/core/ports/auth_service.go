package ports

import (
	"context"
	"encoding/json"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

// RegisterResult is returned after a successful registration.
type RegisterResult struct {
	UserID   int64
	Username string
	Profile  json.RawMessage
}

// LoginResult is returned after a successful login. Token is a signed
// session token; all legacy endpoints keep working without it.
type LoginResult struct {
	UserID   int64
	Username string
	Profile  json.RawMessage
	IsAdmin  bool
	Token    string
}

// AuthService defines account, profile, and admin operations.
type AuthService interface {
	Register(ctx context.Context, username, password, email, createdAt string) (*RegisterResult, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	SaveProfile(ctx context.Context, username string, profile json.RawMessage) error
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	SetAdmin(ctx context.Context, adminUsername, targetUsername string, makeAdmin bool) error
	ListUsers(ctx context.Context, adminUsername string) ([]domain.UserSummary, error)
	AdminSetPassword(ctx context.Context, adminUsername, targetUsername, newPassword string) error
	ResetPassword(ctx context.Context, email string) error
	EnsureSuperAdmin(ctx context.Context) error
}
