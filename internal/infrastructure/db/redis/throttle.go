package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	resetWindow = time.Hour
	resetLimit  = 5
)

// ResetThrottle limits reset-password requests per email address.
// Key format: pwreset:<lowercased email>
type ResetThrottle struct {
	client *redis.Client
}

// NewResetThrottle creates a ResetThrottle wrapping the given Redis client.
func NewResetThrottle(client *redis.Client) *ResetThrottle {
	return &ResetThrottle{client: client}
}

// Allow reports whether another reset attempt for email fits in the window.
func (t *ResetThrottle) Allow(ctx context.Context, email string) (bool, error) {
	key := t.key(email)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("reset throttle: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, resetWindow).Err(); err != nil {
			return false, fmt.Errorf("reset throttle: %w", err)
		}
	}
	return n <= resetLimit, nil
}

func (t *ResetThrottle) key(email string) string {
	return "pwreset:" + strings.ToLower(email)
}
