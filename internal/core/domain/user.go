package domain

import (
	"encoding/json"
	"time"
)

// SuperAdminUsername is the reserved account seeded at startup. Its admin
// flag can never be removed.
const SuperAdminUsername = "kotatsu"

// User models a registered player (or editor) of the visual novel.
type User struct {
	ID           int64           `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email,omitempty"`
	PasswordHash string          `json:"-"`
	IsAdmin      bool            `json:"isAdmin"`
	Profile      json.RawMessage `json:"profile"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// UserSummary is the admin-facing listing row: no credentials, no profile.
type UserSummary struct {
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
