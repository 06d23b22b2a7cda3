package ports

import (
	"context"
	"encoding/json"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Usernames are
// stored lowercased; callers pass already-normalized values.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, username string, profile json.RawMessage) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	SetAdmin(ctx context.Context, username string, isAdmin bool) error
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
}
