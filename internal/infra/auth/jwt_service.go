// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret       []byte        // Secret key for signing access tokens.
	verificationSecret []byte        // Secret key for signing signup verification tickets.
	accessTTL          time.Duration // Time-to-live for access tokens.
	verificationTTL    time.Duration // Time-to-live for verification tickets.
	now                func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Verification == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:       []byte(cfg.SecretKey.Access),
		verificationSecret: []byte(cfg.SecretKey.Verification),
		accessTTL:          cfg.Auth.AccessTokenTTL,
		verificationTTL:    cfg.Auth.VerificationTTL,
		now:                time.Now,
	}, nil
}

// GenerateAccessToken creates a bearer token whose subject is the user id.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.AccessClaims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	return s.sign(claims, s.accessSecret)
}

// ValidateAccessToken parses and verifies an access token.
func (s *jwtService) ValidateAccessToken(token string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := s.parse(token, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Wrapf(service.ErrTokenInvalid, "unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// GenerateVerificationTicket binds email to the OTP record that verified it.
func (s *jwtService) GenerateVerificationTicket(email string, otpID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.VerificationClaims{
		Type: service.TokenTypeVerification,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        otpID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.verificationTTL)),
		},
	}

	return s.sign(claims, s.verificationSecret)
}

// ValidateVerificationTicket parses and verifies a verification ticket.
func (s *jwtService) ValidateVerificationTicket(token string) (*service.VerificationClaims, error) {
	claims := &service.VerificationClaims{}
	if err := s.parse(token, claims, s.verificationSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeVerification {
		return nil, errors.Wrapf(service.ErrTokenInvalid, "unexpected token type %q", claims.Type)
	}

	return claims, nil
}

func (s *jwtService) sign(claims jwt.Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(token string, claims jwt.Claims, secret []byte) error {
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenInvalid, err.Error())
	}
}
