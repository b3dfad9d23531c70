package errors

import "net/http"

// Accounts, credentials and email verification.
var (
	ErrUserNotFound           = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found", "")
	ErrEmailAlreadyRegistered = NewBaseError(http.StatusBadRequest, "EMAIL_ALREADY_REGISTERED", "Email already registered", "")

	ErrUnauthorized       = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")
	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", "")
	ErrPasswordHashFailed = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password", "")
	ErrTokenIssueFailed   = NewBaseError(http.StatusInternalServerError, "TOKEN_ISSUE_FAILED", "Failed to issue token", "")

	ErrOtpInvalid        = NewBaseError(http.StatusBadRequest, "OTP_INVALID", "Invalid or expired code", "")
	ErrOtpExpired        = NewBaseError(http.StatusBadRequest, "OTP_EXPIRED", "OTP expired", "")
	ErrOtpDeliveryFailed = NewBaseError(http.StatusInternalServerError, "OTP_DELIVERY_FAILED", "Failed to send verification code", "")

	ErrVerificationRequired = NewBaseError(http.StatusBadRequest, "VERIFICATION_REQUIRED", "Please verify your email first.", "")
	ErrVerificationExpired  = NewBaseError(http.StatusBadRequest, "VERIFICATION_EXPIRED", "Verification expired, please request a new code", "")
)
