// Package mail delivers verification codes by email.
package mail

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

const verificationSubject = "Your verification code"

// MailerParams holds dependencies for the Mailer, injected by Fx
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the delivery provider from configuration. Without mail config codes are only logged.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderLog {
		params.Logger.Info("Using log mailer, verification codes will not be emailed")

		return newLogMailer(params.Logger), nil
	}

	if cfg.Provider != constants.MailProviderSMTP {
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	return newSMTPMailer(cfg)
}

func verificationBody(code string, ttl time.Duration) string {
	return fmt.Sprintf("Your OTP is: %s. It expires in %d minutes.", code, int(ttl.Minutes()))
}
