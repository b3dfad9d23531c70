// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultOtpTTL = 10 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	otpRepo       repository.OtpRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	codeGenerator service.CodeGenerator
	mailer        service.Mailer
	metrics       service.StoreMetrics
	otpTTL        time.Duration
	now           func() time.Time
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	OtpRepo       repository.OtpRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	CodeGenerator service.CodeGenerator
	Mailer        service.Mailer
	Metrics       service.StoreMetrics
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpTTL := defaultOtpTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OtpTTL > 0 {
		otpTTL = params.Config.Auth.OtpTTL
	}

	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		otpRepo:       params.OtpRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		codeGenerator: params.CodeGenerator,
		mailer:        params.Mailer,
		metrics:       params.Metrics,
		otpTTL:        otpTTL,
		now:           time.Now,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendOtp never reveals whether the email already has an account.
func (srv *authService) SendOtp(ctx context.Context, email string) error {
	email = util.NormalizeEmail(email)

	if err := srv.otpRepo.DeleteUnusedByEmail(ctx, email); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear pending codes")
	}

	code, err := srv.codeGenerator.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	now := srv.now()
	otp := &entity.Otp{
		Email:     email,
		Code:      code,
		ExpiresAt: now.Add(srv.otpTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.otpRepo.Create(ctx, otp); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store verification code")
	}

	if err := srv.mailer.SendVerificationCode(ctx, email, code, srv.otpTTL); err != nil {
		srv.metrics.OtpSent(false)
		srv.log(ctx).Error("Failed to deliver verification code",
			slog.String("email", util.MaskEmail(email)),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrOtpDeliveryFailed, err.Error())
	}

	srv.metrics.OtpSent(true)
	srv.log(ctx).Info("Verification code sent", slog.String("email", util.MaskEmail(email)))

	return nil
}

// VerifyOtp marks the code used and returns a ticket bound to the email and the code record.
func (srv *authService) VerifyOtp(ctx context.Context, input usecase.VerifyOtpInput) (*usecase.VerifyOtpOutput, error) {
	email := util.NormalizeEmail(input.Email)

	otp, err := srv.otpRepo.FindLatestUnused(ctx, email, input.Code)
	if errors.Is(err, repository.ErrOtpNotFound) {
		return nil, domainerrors.ErrOtpInvalid
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find verification code")
	}

	if otp.IsExpired(srv.now()) {
		return nil, domainerrors.ErrOtpExpired
	}

	// A concurrent verification of the same code loses here.
	if err := srv.otpRepo.MarkUsed(ctx, otp.ID); err != nil {
		if errors.Is(err, repository.ErrOtpNotFound) {
			return nil, domainerrors.ErrOtpInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark verification code used")
	}

	ticket, err := srv.tokenService.GenerateVerificationTicket(email, otp.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue verification ticket", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("Email verified", slog.String("email", util.MaskEmail(email)))

	return &usecase.VerifyOtpOutput{VerificationToken: ticket}, nil
}

// Signup consumes the verification ticket and creates the account in one transaction.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up email")
	}

	otpID, err := srv.checkTicket(input.VerificationToken, email)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	user := &entity.User{
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Cart:         entity.Cart{},
		OrderIDs:     []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.NewOtpRepository()

		if err := otpRepo.Consume(ctx, otpID, email); err != nil {
			if errors.Is(err, repository.ErrOtpNotFound) {
				return domainerrors.ErrVerificationRequired
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to consume verification code")
		}

		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}

		if err := otpRepo.DeleteByEmail(ctx, email); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to clear verification codes")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", util.MaskEmail(email)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", user.ID))

	return srv.issue(user)
}

// checkTicket returns the OTP record id the ticket was issued for.
func (srv *authService) checkTicket(ticket, email string) (uuid.UUID, error) {
	if ticket == "" {
		return uuid.Nil, domainerrors.ErrVerificationRequired
	}

	claims, err := srv.tokenService.ValidateVerificationTicket(ticket)
	if err != nil {
		return uuid.Nil, domainerrors.ErrVerificationExpired
	}

	if util.NormalizeEmail(claims.Subject) != email {
		return uuid.Nil, domainerrors.ErrVerificationRequired
	}

	otpID, err := claims.OtpID()
	if err != nil {
		return uuid.Nil, domainerrors.ErrVerificationExpired
	}

	return otpID, nil
}

// Login reports unknown emails and wrong passwords the same way.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := util.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login for unknown email", slog.String("email", util.MaskEmail(email)))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}

// Authenticate fails with ErrUnauthorized for bad tokens and for users that no longer exist.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateAccessToken(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "invalid subject")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "user no longer exists")
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load authenticated user")
	}

	return user, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}
