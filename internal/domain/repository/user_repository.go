// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrCartVersionConflict is returned when the cart changed since it was read.
	ErrCartVersionConflict = errors.New("cart version conflict")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (lower-cased) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateCart replaces the cart only if the stored version still equals expectedVersion.
	// It returns the new version, or ErrCartVersionConflict when another write won.
	UpdateCart(ctx context.Context, userID uuid.UUID, expectedVersion int64, cart entity.Cart) (int64, error)

	// AppendOrder adds an order id to the user's order references.
	AppendOrder(ctx context.Context, userID, orderID uuid.UUID) error
}
