package ports

import "context"

// Mailer delivers the reset-password message. Implementations must treat a
// missing SMTP configuration as a no-op, not an error: the password has
// already been rotated by the time delivery is attempted.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, username, newPassword string) error
}

// ResetThrottle rate-limits reset-password requests per email address.
// A nil throttle means unlimited.
type ResetThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
}
