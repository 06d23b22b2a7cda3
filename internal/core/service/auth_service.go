package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/kotatsu-vn/novel-backend/internal/core/domain"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

const superAdminCreatedAt = "2025-01-01T00:00:00.000Z"

// AuthService implements registration, login, profile persistence, and the
// admin operations over user accounts.
type AuthService struct {
	repo      ports.AuthRepository
	mailer    ports.Mailer
	throttle  ports.ResetThrottle
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, mailer ports.Mailer, throttle ports.ResetThrottle, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		mailer:    mailer,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// normalizeUsername applies the canonical form used everywhere: usernames
// are case-insensitive and stored lowercased.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (s *AuthService) Register(ctx context.Context, username, password, email, createdAt string) (*ports.RegisterResult, error) {
	username = normalizeUsername(username)
	email = strings.TrimSpace(email)

	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	// Length rules count characters, not bytes: "яяя" is a 3-char username.
	if utf8.RuneCountInString(username) < 3 {
		return nil, domain.ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < 4 {
		return nil, domain.ErrPasswordTooShort
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	profile, err := json.Marshal(domain.NewDefaultProfile(username, createdAt))
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Profile:      profile,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &ports.RegisterResult{
		UserID:   created.ID,
		Username: username,
		Profile:  profile,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	// Transparent upgrade of pre-migration sha256 rows.
	if isLegacyHash(user.PasswordHash) {
		if hash, err := hashPassword(password); err == nil {
			if err := s.repo.UpdatePassword(ctx, username, hash); err != nil {
				s.log.Warn().Err(err).Str("username", username).Msg("legacy hash upgrade failed")
			}
		}
	}

	token, err := s.generateToken(username, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{
		UserID:   user.ID,
		Username: username,
		Profile:  user.Profile,
		IsAdmin:  user.IsAdmin,
		Token:    token,
	}, nil
}

func (s *AuthService) SaveProfile(ctx context.Context, username string, profile json.RawMessage) error {
	username = normalizeUsername(username)
	if username == "" || len(profile) == 0 {
		return domain.ErrMissingProfile
	}
	if !domain.ValidProfileDocument(profile) {
		return domain.ErrInvalidProfile
	}
	// Stored verbatim: no merge, no shape validation beyond "is an object".
	return s.repo.UpdateProfile(ctx, username, profile)
}

func (s *AuthService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	username = normalizeUsername(username)
	if username == "" || oldPassword == "" || newPassword == "" {
		return domain.ErrMissingFields
	}
	if utf8.RuneCountInString(newPassword) < 4 {
		return domain.ErrNewPasswordTooShort
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrWrongPassword
		}
		return err
	}
	if !verifyPassword(user.PasswordHash, oldPassword) {
		return domain.ErrWrongPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, username, hash)
}

func (s *AuthService) SetAdmin(ctx context.Context, adminUsername, targetUsername string, makeAdmin bool) error {
	adminUsername = normalizeUsername(adminUsername)
	targetUsername = normalizeUsername(targetUsername)
	if adminUsername == "" || targetUsername == "" {
		return domain.ErrMissingUsernames
	}

	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return err
	}
	if targetUsername == domain.SuperAdminUsername && !makeAdmin {
		return domain.ErrSuperAdminImmutable
	}

	return s.repo.SetAdmin(ctx, targetUsername, makeAdmin)
}

func (s *AuthService) ListUsers(ctx context.Context, adminUsername string) ([]domain.UserSummary, error) {
	if err := s.requireAdmin(ctx, normalizeUsername(adminUsername)); err != nil {
		return nil, err
	}
	return s.repo.ListUsers(ctx)
}

func (s *AuthService) AdminSetPassword(ctx context.Context, adminUsername, targetUsername, newPassword string) error {
	adminUsername = normalizeUsername(adminUsername)
	targetUsername = normalizeUsername(targetUsername)
	if adminUsername == "" || targetUsername == "" || newPassword == "" {
		return domain.ErrMissingFields
	}

	if err := s.requireAdmin(ctx, adminUsername); err != nil {
		return err
	}
	if utf8.RuneCountInString(newPassword) < 4 {
		return domain.ErrPasswordTooShort
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, targetUsername, hash)
}

// ResetPassword rotates the password first and emails it best-effort. The
// response is uniform whether or not the email exists, so the endpoint
// cannot be used to enumerate accounts.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.ErrMissingEmail
	}

	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, email)
		if err != nil {
			// Throttle backend down: fail open, the operation itself is cheap.
			s.log.Warn().Err(err).Msg("reset throttle unavailable")
		} else if !ok {
			return domain.ErrTooManyResets
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	newPassword, err := generatePassword()
	if err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.Username, hash); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, email, user.Username, newPassword); err != nil {
		// The password is already rotated; delivery failure is swallowed.
		s.log.Warn().Err(err).Str("username", user.Username).Msg("reset mail delivery failed")
	}
	return nil
}

// EnsureSuperAdmin seeds the reserved admin account once at startup.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context) error {
	_, err := s.repo.FindByUsername(ctx, domain.SuperAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := hashPassword(domain.SuperAdminUsername)
	if err != nil {
		return err
	}
	profile, err := json.Marshal(domain.NewDefaultProfile("Kotatsu", superAdminCreatedAt))
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, &domain.User{
		Username:     domain.SuperAdminUsername,
		PasswordHash: hash,
		IsAdmin:      true,
		Profile:      profile,
	})
	if errors.Is(err, domain.ErrUserExists) {
		// Lost a startup race with another replica; the row exists.
		return nil
	}
	return err
}

func (s *AuthService) requireAdmin(ctx context.Context, username string) error {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrNotAdmin
		}
		return err
	}
	if !user.IsAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}

func (s *AuthService) generateToken(username string, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"isAdmin":  isAdmin,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
