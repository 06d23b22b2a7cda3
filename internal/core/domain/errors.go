package domain

import "errors"

// Auth / profile errors. Client-facing messages (Russian, carried over from
// the production front-end contract) are attached by the HTTP error handler.
var (
	ErrMissingCredentials  = errors.New("username and password are required")
	ErrUsernameTooShort    = errors.New("username shorter than 3 characters")
	ErrPasswordTooShort    = errors.New("password shorter than 4 characters")
	ErrNewPasswordTooShort = errors.New("new password shorter than 4 characters")
	ErrUserExists          = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrWrongPassword       = errors.New("current password does not match")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotAdmin            = errors.New("admin privileges required")
	ErrSuperAdminImmutable = errors.New("super admin rights cannot be revoked")
	ErrMissingUsernames    = errors.New("both usernames are required")
	ErrMissingFields       = errors.New("all fields are required")
	ErrMissingProfile      = errors.New("username and profile are required")
	ErrMissingEmail        = errors.New("email is required")
	ErrInvalidProfile      = errors.New("profile must be a JSON object")
	ErrTooManyResets       = errors.New("too many reset requests")
)

// Novel / project errors.
var (
	ErrNovelNotFound   = errors.New("novel not found")
	ErrAdminRequired   = errors.New("admin access required")
	ErrProjectNotFound = errors.New("project not found")
	ErrNoUpdates       = errors.New("no updates provided")
)

// Upload errors.
var (
	ErrNoFile          = errors.New("no file provided")
	ErrInvalidFileData = errors.New("file data is not valid base64")
)
