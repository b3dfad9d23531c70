package service

import (
	"context"
	"time"
)

// Mailer delivers transactional email.
type Mailer interface {
	// SendVerificationCode emails a one-time code that stays valid for ttl.
	SendVerificationCode(ctx context.Context, to, code string, ttl time.Duration) error
}
