package entity

import (
	"time"

	"github.com/google/uuid"
)

// Otp is a one-time verification code sent to an email address.
type Otp struct {
	ID        uuid.UUID
	Email     string
	Code      string // Six decimal digits.
	ExpiresAt time.Time
	Used      bool // Set once the code has been verified.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the code is no longer valid at now.
func (o *Otp) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
