package mail

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/util"
)

// logMailer stands in for SMTP during local development. Codes are only visible at debug level.
type logMailer struct {
	logger *slog.Logger
}

func newLogMailer(logger *slog.Logger) *logMailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendVerificationCode(ctx context.Context, to, code string, ttl time.Duration) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
	logger.InfoContext(ctx, "Verification email suppressed", slog.String("to", util.MaskEmail(to)))
	logger.DebugContext(ctx, "Verification email body",
		slog.String("to", to),
		slog.String("subject", verificationSubject),
		slog.String("body", verificationBody(code, ttl)),
	)

	return nil
}
