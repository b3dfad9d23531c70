// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// VerifyOtpInput is an email and the code that was mailed to it.
type VerifyOtpInput struct {
	Email string
	Code  string
}

// SignupInput defines the data required to create an account.
// VerificationToken is the ticket returned by VerifyOtp.
type SignupInput struct {
	Name              string
	Email             string
	Password          string
	VerificationToken string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// VerifyOtpOutput carries the ticket that proves the email was verified.
type VerifyOtpOutput struct {
	VerificationToken string
}

// AuthOutput returns the access token and the authenticated user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase covers email verification, account creation and login.
type AuthUsecase interface {
	// SendOtp replaces any pending code for email with a new one and mails it.
	SendOtp(ctx context.Context, email string) error
	// VerifyOtp checks a code and issues a verification ticket.
	VerifyOtp(ctx context.Context, input VerifyOtpInput) (*VerifyOtpOutput, error)
	// Signup creates an account for a verified email.
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)
	// Login checks credentials and issues an access token.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	// Me returns the user's profile.
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	// Authenticate resolves a bearer token to an existing user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
