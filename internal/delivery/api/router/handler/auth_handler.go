package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves email verification, signup and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SendOtpRequest is the body of POST /auth/send-otp
type SendOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOtpRequest is the body of POST /auth/verify-otp
type VerifyOtpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// SignupRequest is the body of POST /auth/signup
type SignupRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password" validate:"required,maxbytes=72"`
	VerificationToken string `json:"verificationToken"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOtpResponse carries the ticket that signup expects.
type VerifyOtpResponse struct {
	Message           string `json:"message"`
	VerificationToken string `json:"verificationToken"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message string        `json:"message,omitempty"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// SendOtp mails a fresh verification code.
func (h *AuthHandler) SendOtp(c echo.Context) error {
	var req SendOtpRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	if err := h.authUC.SendOtp(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "OTP sent")
}

// VerifyOtp checks a code and returns a verification ticket.
func (h *AuthHandler) VerifyOtp(c echo.Context) error {
	var req VerifyOtpRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	output, err := h.authUC.VerifyOtp(c.Request().Context(), usecase.VerifyOtpInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, VerifyOtpResponse{
		Message:           "OTP verified",
		VerificationToken: output.VerificationToken,
	})
}

// Signup creates an account for a verified email.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	output, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		VerificationToken: req.VerificationToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		Token: output.Token,
		User:  toUserResponse(output.User),
	})
}

// Login checks credentials and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, handled := bindRequest(c, &req); !ok {
		return handled
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		Message: "Login successful",
		Token:   output.Token,
		User:    toUserResponse(output.User),
	})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
