package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOtpNotFound is returned when no matching code exists, or a conditional update matched nothing.
var ErrOtpNotFound = errors.New("otp not found")

// OtpRepository stores one-time verification codes.
type OtpRepository interface {
	// Create stores a new code.
	Create(ctx context.Context, otp *entity.Otp) error

	// FindLatestUnused returns the most recently created unused code matching email and code.
	FindLatestUnused(ctx context.Context, email, code string) (*entity.Otp, error)

	// MarkUsed flags the code as used only if it is still unused.
	// ErrOtpNotFound means a concurrent verification already used it.
	MarkUsed(ctx context.Context, id uuid.UUID) error

	// Consume deletes a used code exactly once. ErrOtpNotFound means it was already consumed.
	Consume(ctx context.Context, id uuid.UUID, email string) error

	// DeleteUnusedByEmail removes all pending codes for the email.
	DeleteUnusedByEmail(ctx context.Context, email string) error

	// DeleteByEmail removes every code for the email.
	DeleteByEmail(ctx context.Context, email string) error
}
