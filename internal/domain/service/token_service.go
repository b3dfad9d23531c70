package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess       = "access"
	TokenTypeVerification = "verification"
)

var (
	// ErrTokenInvalid covers malformed tokens, bad signatures and wrong token types.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// AccessClaims are carried by bearer tokens.
type AccessClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// UserID returns the subject as a uuid.
func (c *AccessClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// VerificationClaims are carried by the ticket issued after a successful OTP check.
// The subject is the verified email and the token id is the OTP record id.
type VerificationClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// OtpID returns the OTP record the ticket was issued for.
func (c *VerificationClaims) OtpID() (uuid.UUID, error) {
	return uuid.Parse(c.ID)
}

// TokenService issues and validates signed tokens.
type TokenService interface {
	// GenerateAccessToken creates a bearer token for userID.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken returns the claims of a valid, unexpired access token.
	ValidateAccessToken(token string) (*AccessClaims, error)

	// GenerateVerificationTicket proves that email was verified through the OTP record otpID.
	GenerateVerificationTicket(email string, otpID uuid.UUID) (string, error)

	// ValidateVerificationTicket returns the claims of a valid, unexpired ticket.
	ValidateVerificationTicket(token string) (*VerificationClaims, error)
}
